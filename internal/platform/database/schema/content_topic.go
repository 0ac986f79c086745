package schema

// ContentTopicTable represents the 'content.topic' table
type ContentTopicTable struct {
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
	Version     string
	CreatedAt   string
}

// ContentTopic is the schema definition for content.topic
var ContentTopic = ContentTopicTable{
	Table:       "content.topic",
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
	Version:     "version",
	CreatedAt:   "createdat",
}

func (t ContentTopicTable) Columns() []string {
	return []string{
		t.ID, t.OwnerEmail, t.OwnerID, t.TitleEn, t.TitleAr, t.TitleFr,
		t.ParagraphEn, t.ParagraphAr, t.ParagraphFr, t.Image, t.YoutubeLink,
		t.Version, t.CreatedAt,
	}
}
