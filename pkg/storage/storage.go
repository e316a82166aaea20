package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// BlobStorage 外部对象存储协作方；核心只持有返回的引用
type BlobStorage interface {
	// StoreImage 保存图片并返回不透明引用（相对路径）
	StoreImage(data []byte, category, suggestedName string) (string, error)
}

type localStorage struct {
	baseDir string
}

// NewLocalStorage 本地文件系统实现
func NewLocalStorage(baseDir string) BlobStorage {
	return &localStorage{baseDir: baseDir}
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// slugify 与原始命名保持一致：slug(title)-uuid.ext
func slugify(s string) string {
	s = strings.ToLower(s)
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func (s *localStorage) StoreImage(data []byte, category, suggestedName string) (string, error) {
	ext := filepath.Ext(suggestedName)
	base := slugify(strings.TrimSuffix(filepath.Base(suggestedName), ext))
	if base == "" {
		base = "image"
	}
	name := fmt.Sprintf("%s-%s%s", base, uuid.New().String(), ext)
	rel := filepath.Join(category, name)

	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.baseDir, rel), data, 0o644); err != nil {
		return "", err
	}
	return rel, nil
}
