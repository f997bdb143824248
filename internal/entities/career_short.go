package entities

type CareerShort struct {
	ID        string   `json:"id" yaml:"id" validate:"required"`
	Title     string   `json:"title" yaml:"title" validate:"required"`
	Creator   string   `json:"creator" yaml:"creator"`
	VideoURL  string   `json:"videoUrl" yaml:"videoUrl" validate:"required,url"`
	Thumbnail string   `json:"thumbnail" yaml:"thumbnail"`
	Likes     int      `json:"likes" yaml:"likes"`
	Comments  int      `json:"comments" yaml:"comments"`
	Shares    int      `json:"shares" yaml:"shares"`
	Hashtags  []string `json:"hashtags" yaml:"hashtags"`
}

type CareerShorts []CareerShort

type DeliveryPlan struct {
	ShortID        string            `json:"shortId"`
	Title          string            `json:"title"`
	Quality        Quality           `json:"quality"`
	URL            string            `json:"url,omitempty"`
	Thumbnail      string            `json:"thumbnail,omitempty"`
	Headers        map[string]string `json:"headers,omitempty"`
	Preload        bool              `json:"preload"`
	Offline        bool              `json:"offline"`
	SlowConnection bool              `json:"slowConnection"`
}

type DeliveryPlans []DeliveryPlan
