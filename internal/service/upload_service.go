package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/storage"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
)

var allowedUploadScenes = map[string]struct{}{
	constants.UploadSceneBanner:   {},
	constants.UploadSceneProduct:  {},
	constants.UploadSceneCategory: {},
	constants.UploadSceneCMS:      {},
	constants.UploadSceneSettings: {},
}

// UploadResult 上传结果
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// UploadService 文件上传服务
type UploadService struct {
	cfg   config.UploadConfig
	store storage.Storage
	now   func() time.Time
}

// NewUploadService 创建文件上传服务实例
func NewUploadService(cfg config.UploadConfig, store storage.Storage) *UploadService {
	return &UploadService{cfg: cfg, store: store, now: time.Now}
}

// SaveFile 校验并保存上传的图片
func (s *UploadService) SaveFile(ctx context.Context, file *multipart.FileHeader, scene string) (*UploadResult, error) {
	if file == nil || file.Size <= 0 {
		return nil, ErrUploadEmpty
	}
	normalizedScene, ok := normalizeUploadScene(scene)
	if !ok {
		return nil, ErrUploadSceneInvalid
	}
	if s.cfg.MaxSize > 0 && file.Size > s.cfg.MaxSize {
		return nil, ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.AllowedExtensions) {
			return nil, ErrUploadTypeNotAllowed
		}
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// 读取文件头部识别 MIME 类型
	buffer := make([]byte, 512)
	if _, err := src.Read(buffer); err != nil && err != io.EOF {
		return nil, err
	}
	contentType := http.DetectContentType(buffer)
	if len(s.cfg.AllowedTypes) > 0 && !isAllowedContentType(contentType, s.cfg.AllowedTypes) {
		return nil, ErrUploadTypeNotAllowed
	}

	if strings.HasPrefix(contentType, "image/") {
		width, height, err := decodeImageDimensions(src, contentType, file.Size)
		if err != nil {
			return nil, ErrUploadTypeNotAllowed
		}
		if (s.cfg.MaxWidth > 0 && width > s.cfg.MaxWidth) || (s.cfg.MaxHeight > 0 && height > s.cfg.MaxHeight) {
			return nil, ErrUploadDimensionExceeded
		}
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	now := s.now()
	filename := uuid.New().String() + ext
	key := path.Join(normalizedScene, now.Format("2006"), now.Format("01"), filename)
	url, err := s.store.Save(ctx, key, src, contentType)
	if err != nil {
		return nil, err
	}
	logger.Infow("upload_saved",
		"scene", normalizedScene,
		"driver", s.store.Driver(),
		"key", key,
		"size", file.Size,
	)
	return &UploadResult{URL: url, Filename: filename, Size: file.Size}, nil
}

func normalizeUploadScene(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return constants.UploadSceneCMS, true
	}
	_, ok := allowedUploadScenes[value]
	return value, ok
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if strings.EqualFold(ext, normalized) {
			return true
		}
	}
	return false
}

func isAllowedContentType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(contentType, strings.TrimSpace(t)) {
			return true
		}
	}
	return false
}

func decodeImageDimensions(src io.ReadSeeker, contentType string, size int64) (int, int, error) {
	if strings.EqualFold(contentType, "image/webp") {
		width, height, err := decodeWebPDimensions(src, size)
		if err != nil {
			return 0, 0, fmt.Errorf("decode webp failed: %w", err)
		}
		return width, height, nil
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image failed: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// webpHeaderBytes 各图像块中解析宽高所需的最少字节数
var webpHeaderBytes = map[string]int{"VP8X": 10, "VP8 ": 10, "VP8L": 5}

// decodeWebPDimensions 逐块扫描 RIFF 容器；块长度不得超过文件大小，非图像块直接跳过不读入内存
func decodeWebPDimensions(src io.ReadSeeker, size int64) (int, int, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	var header [12]byte
	if _, err := io.ReadFull(src, header[:]); err != nil {
		return 0, 0, err
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WEBP" {
		return 0, 0, errors.New("invalid webp header")
	}

	var chunkHeader [8]byte
	for {
		if _, err := io.ReadFull(src, chunkHeader[:]); err != nil {
			return 0, 0, err
		}
		chunkType := string(chunkHeader[0:4])
		chunkSize := int64(binary.LittleEndian.Uint32(chunkHeader[4:8]))
		if chunkSize > size {
			return 0, 0, fmt.Errorf("webp chunk %q size %d exceeds file size %d", chunkType, chunkSize, size)
		}

		need, isImage := webpHeaderBytes[chunkType]
		if !isImage {
			if _, err := src.Seek(chunkSize+chunkSize%2, io.SeekCurrent); err != nil {
				return 0, 0, err
			}
			continue
		}
		if chunkSize < int64(need) {
			return 0, 0, fmt.Errorf("%s chunk too short", strings.TrimSpace(chunkType))
		}
		data := make([]byte, need)
		if _, err := io.ReadFull(src, data); err != nil {
			return 0, 0, err
		}
		switch chunkType {
		case "VP8X":
			width := 1 + int(data[4]) + int(data[5])<<8 + int(data[6])<<16
			height := 1 + int(data[7]) + int(data[8])<<8 + int(data[9])<<16
			return width, height, nil
		case "VP8 ":
			width := int(binary.LittleEndian.Uint16(data[6:8]) & 0x3FFF)
			height := int(binary.LittleEndian.Uint16(data[8:10]) & 0x3FFF)
			return width, height, nil
		default:
			if data[0] != 0x2f {
				return 0, 0, errors.New("invalid vp8l signature")
			}
			bits := binary.LittleEndian.Uint32(data[1:5])
			return int(bits&0x3FFF) + 1, int((bits>>14)&0x3FFF) + 1, nil
		}
	}
}
