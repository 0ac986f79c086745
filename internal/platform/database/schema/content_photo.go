package schema

// ContentPhotoTable represents the 'content.photo' table
type ContentPhotoTable struct {
	Table      string
	ID         string
	OwnerEmail string
	OwnerID    string
	Image      string
	Version    string
	CreatedAt  string
}

// ContentPhoto is the schema definition for content.photo
var ContentPhoto = ContentPhotoTable{
	Table:      "content.photo",
	ID:         "id",
	OwnerEmail: "owneremail",
	OwnerID:    "ownerid",
	Image:      "image",
	Version:    "version",
	CreatedAt:  "createdat",
}

func (t ContentPhotoTable) Columns() []string {
	return []string{
		t.ID, t.OwnerEmail, t.OwnerID, t.Image, t.Version, t.CreatedAt,
	}
}
