package schema

// ContentPartnershipTable represents the 'content.partnership' table
type ContentPartnershipTable struct {
	Table      string
	ID         string
	OwnerEmail string
	OwnerID    string
	Image      string
	WebsiteURL string
	Version    string
	CreatedAt  string
}

// ContentPartnership is the schema definition for content.partnership
var ContentPartnership = ContentPartnershipTable{
	Table:      "content.partnership",
	ID:         "id",
	OwnerEmail: "owneremail",
	OwnerID:    "ownerid",
	Image:      "image",
	WebsiteURL: "websiteurl",
	Version:    "version",
	CreatedAt:  "createdat",
}

func (t ContentPartnershipTable) Columns() []string {
	return []string{
		t.ID, t.OwnerEmail, t.OwnerID, t.Image, t.WebsiteURL, t.Version, t.CreatedAt,
	}
}
