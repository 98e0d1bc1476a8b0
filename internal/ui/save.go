package ui

import (
	"fmt"

	"wallpaper/internal/imagegen"
	"wallpaper/internal/storage"
)

// DownloadFilename is the fixed name every saved wallpaper gets.
const DownloadFilename = "ai-wallpaper.jpeg"

// SaveImage decodes an image reference and writes it to dir, replacing any
// earlier download. It returns the written path.
func SaveImage(dir, imageRef string) (string, error) {
	if imageRef == "" {
		return "", fmt.Errorf("ui: no image to save")
	}
	_, data, err := imagegen.DecodeDataURI(imageRef)
	if err != nil {
		return "", fmt.Errorf("ui: decode image: %w", err)
	}
	downloads, err := storage.NewDownloads(dir)
	if err != nil {
		return "", err
	}
	return downloads.Save(DownloadFilename, data)
}
