package schema

// ContentVideoTable represents the 'content.video' table
type ContentVideoTable struct {
	Table       string
	ID          string
	OwnerEmail  string
	OwnerID     string
	TitleEn     string
	TitleAr     string
	TitleFr     string
	YoutubeLink string
	Version     string
	CreatedAt   string
}

// ContentVideo is the schema definition for content.video
var ContentVideo = ContentVideoTable{
	Table:       "content.video",
	ID:          "id",
	OwnerEmail:  "owneremail",
	OwnerID:     "ownerid",
	TitleEn:     "titleen",
	TitleAr:     "titlear",
	TitleFr:     "titlefr",
	YoutubeLink: "youtubelink",
	Version:     "version",
	CreatedAt:   "createdat",
}

func (t ContentVideoTable) Columns() []string {
	return []string{
		t.ID, t.OwnerEmail, t.OwnerID, t.TitleEn, t.TitleAr, t.TitleFr,
		t.YoutubeLink, t.Version, t.CreatedAt,
	}
}
