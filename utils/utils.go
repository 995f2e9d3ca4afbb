package utils

import (
	"os"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
