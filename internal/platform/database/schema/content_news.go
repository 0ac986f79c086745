package schema

// ContentNewsTable represents the 'content.news' table
type ContentNewsTable struct {
	Table       string
	ID          string
	OwnerEmail  string
	OwnerID     string
	TitleEn     string
	TitleAr     string
	TitleFr     string
	ParagraphEn string
	ParagraphAr string
	ParagraphFr string
	Image       string
	YoutubeLink string
	IsFeatured  string
	Version     string
	CreatedAt   string
}

// ContentNews is the schema definition for content.news
var ContentNews = ContentNewsTable{
	Table:       "content.news",
	ID:          "id",
	OwnerEmail:  "owneremail",
	OwnerID:     "ownerid",
	TitleEn:     "titleen",
	TitleAr:     "titlear",
	TitleFr:     "titlefr",
	ParagraphEn: "paragraphen",
	ParagraphAr: "paragraphar",
	ParagraphFr: "paragraphfr",
	Image:       "image",
	YoutubeLink: "youtubelink",
	IsFeatured:  "isfeatured",
	Version:     "version",
	CreatedAt:   "createdat",
}

func (t ContentNewsTable) Columns() []string {
	return []string{
		t.ID, t.OwnerEmail, t.OwnerID, t.TitleEn, t.TitleAr, t.TitleFr,
		t.ParagraphEn, t.ParagraphAr, t.ParagraphFr, t.Image, t.YoutubeLink,
		t.IsFeatured, t.Version, t.CreatedAt,
	}
}
