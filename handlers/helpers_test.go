package handlers

import "videothingy/caption-board/models"

func captionsWithContent(contents ...string) []models.Caption {
	captions := make([]models.Caption, 0, len(contents))
	for _, c := range contents {
		c := c
		captions = append(captions, models.Caption{Content: &c})
	}
	return captions
}
