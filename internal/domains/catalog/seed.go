package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saksham-app/delivery-agent/internal/entities"
)

var careerHashtags = []string{"career", "growth", "skills"}

// DefaultShorts returns built-in career shorts feed.
func DefaultShorts() entities.CareerShorts {
	return entities.CareerShorts{
		{
			ID:        "1",
			Title:     "Top 5 Skills for Software Engineers",
			Creator:   "TechCareer",
			VideoURL:  "https://youtube.com/shorts/lLiPGyg7hc4?feature=shared",
			Thumbnail: "https://via.placeholder.com/300x400",
			Likes:     1250,
			Comments:  89,
			Shares:    45,
			Hashtags:  careerHashtags,
		},
		{
			ID:        "2",
			Title:     "How to Ace Your Job Interview",
			Creator:   "CareerGuru",
			VideoURL:  "https://youtube.com/shorts/6bwRlZOXUlE?feature=shared",
			Thumbnail: "https://via.placeholder.com/300x400",
			Likes:     2100,
			Comments:  156,
			Shares:    78,
			Hashtags:  careerHashtags,
		},
	}
}

// LoadShorts reads shorts from yaml file with top level "shorts" list.
func LoadShorts(path string) (shorts entities.CareerShorts, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return shorts, fmt.Errorf("LoadShorts: %w", err)
	}

	var file struct {
		Shorts entities.CareerShorts `yaml:"shorts"`
	}
	if err = yaml.Unmarshal(data, &file); err != nil {
		return shorts, fmt.Errorf("LoadShorts: %w", err)
	}

	return file.Shorts, nil
}
