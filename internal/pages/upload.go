package pages

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"linkify/internal/config"
	"linkify/pkg/assets"
	"linkify/pkg/domain"
	"linkify/pkg/logger"
	"linkify/pkg/serrors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// uploadTimeLayout renders upload times as UTC with millisecond precision.
const uploadTimeLayout = "2006-01-02T15:04:05.000Z"

// UploadKey derives the asset key of a profile image uploaded at the given
// time: the hex SHA-512 of "<owner>-<pageID>-<time>".
func UploadKey(owner domain.Owner, pageID domain.PageID, at time.Time) string {
	sum := sha512.Sum512([]byte(string(owner) + "-" + string(pageID) + "-" + at.UTC().Format(uploadTimeLayout)))

	return hex.EncodeToString(sum[:])
}

// ContentKey derives the asset key of an upload from its bytes.
func ContentKey(data []byte) string {
	sum := sha512.Sum512(data)

	return hex.EncodeToString(sum[:])
}

// AssetURL builds the public URL of an asset served from cdnDomain.
func AssetURL(cdnDomain, key string) string {
	return "https://" + cdnDomain + "/" + url.PathEscape(key)
}

// AssetKey extracts the asset key from a URL built by AssetURL. It reports
// false for URLs hosted elsewhere.
func AssetKey(cdnDomain, assetURL string) (string, bool) {
	rest, ok := strings.CutPrefix(assetURL, "https://"+cdnDomain+"/")
	if !ok || rest == "" {
		return "", false
	}

	key, err := url.PathUnescape(rest)
	if err != nil || key == "" || strings.Contains(key, "/") {
		return "", false
	}

	return key, true
}

// UploadProfileImage stores data in the asset store and returns its public
// URL. The page is not modified: callers set the URL through UpdatePageInfo.
func (p *pages) UploadProfileImage(ctx context.Context,
	owner domain.Owner,
	pageID domain.PageID,
	data []byte) (assetURL string, err error) {
	defer observe(opUploadImage, time.Now(), &err)

	if len(data) == 0 {
		return "", serrors.With(serrors.ErrInvalidArgument, "image is empty")
	}
	if err := ValidatePageID(pageID); err != nil {
		return "", err
	}

	key := UploadKey(owner, pageID, p.options.Clock())
	if p.options.KeyStrategy == config.KeyStrategyContent {
		key = ContentKey(data)
	}

	contentType := http.DetectContentType(data)
	if err := p.assets.Put(context.WithoutCancel(ctx), assets.Object{
		Key:         key,
		ContentType: contentType,
		Owner:       string(owner),
		Data:        data,
	}); err != nil {
		return "", dependencyError(ctx, err, "could not store image")
	}

	logger.Debug(ctx, "profile image stored",
		zap.String("page_id", string(pageID)),
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int("size", len(data)))

	return AssetURL(p.options.CDNDomain, key), nil
}
