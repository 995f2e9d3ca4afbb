package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// SaveBanner stores an uploaded banner image under dir as <id>.jpg and
// writes a 300x200 thumbnail next to it in dir/thumb. Returns the saved
// filename.
func SaveBanner(file multipart.File, dir, id string) (string, error) {
	img, err := imaging.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decode banner: %w", err)
	}

	if err := EnsureDir(filepath.Join(dir, "thumb")); err != nil {
		return "", err
	}

	filename := id + ".jpg"
	if err := imaging.Save(img, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("save banner: %w", err)
	}

	thumb := imaging.Resize(img, 300, 200, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(dir, "thumb", filename)); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}

	return filename, nil
}
