package vision

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	"github.com/bep/imagemeta"
	"github.com/corona10/goimagehash"
	"github.com/helmcode/leadscore/pkg/model"
	_ "golang.org/x/image/webp"
)

// maxHashPixels bounds the image size Inspect fully decodes for hashing.
var maxHashPixels = 40_000_000

// wantedTags maps (source, tag-name) to the tags Inspect reports.
var wantedTags = map[imagemeta.Source]map[string]bool{
	imagemeta.EXIF: {
		"Artist":    true,
		"Copyright": true,
	},
	imagemeta.IPTC: {
		"Byline":          true,
		"CopyrightNotice": true,
	},
	imagemeta.XMP: {
		"Creator": true,
		"Rights":  true,
	},
}

// Inspect decodes the image at path for its format, dimensions, perceptual
// hash and authorship metadata. Failures are reported in ImageInfo.Error;
// whatever was read before the failure is kept.
func Inspect(path string) *model.ImageInfo {
	info := &model.ImageInfo{}

	f, err := os.Open(path)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		slog.Debug("image decode config failed", "path", path, "error", err)
		info.Error = err.Error()
		return info
	}
	info.Format = format
	info.Width = cfg.Width
	info.Height = cfg.Height

	if cfg.Width*cfg.Height <= maxHashPixels {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			info.Error = err.Error()
			return info
		}
		if img, _, err := image.Decode(f); err == nil {
			if hash, err := goimagehash.DifferenceHash(img); err == nil {
				info.Hash = hash.ToString()
			}
		}
	} else {
		slog.Debug("image too large to hash", "path", path, "width", cfg.Width, "height", cfg.Height)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		info.Error = err.Error()
		return info
	}
	readAuthorship(f, info)

	return info
}

// readAuthorship fills artist and copyright from EXIF, IPTC or XMP. The
// first non-empty value per field wins.
func readAuthorship(f *os.File, info *model.ImageInfo) {
	err := imagemeta.Decode(imagemeta.Options{
		R:       f,
		Sources: imagemeta.EXIF | imagemeta.IPTC | imagemeta.XMP,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			if tags, ok := wantedTags[ti.Source]; ok {
				return tags[ti.Tag]
			}
			return false
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			s := tagValueString(ti.Value)
			if s == "" {
				return nil
			}
			switch ti.Tag {
			case "Artist", "Byline", "Creator":
				if info.Artist == "" {
					info.Artist = s
				}
			case "Copyright", "CopyrightNotice", "Rights":
				if info.Copyright == "" {
					info.Copyright = s
				}
			}
			return nil
		},
	})
	if err != nil {
		slog.Debug("image metadata unavailable", "error", err)
	}
}

// tagValueString extracts a string from a tag value. XMP values may be
// string or a list.
func tagValueString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) > 0 {
			return val[0]
		}
	case []any:
		if len(val) > 0 {
			if s, ok := val[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
