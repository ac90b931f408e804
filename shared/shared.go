package shared

import (
	"agrirent/shared/cache"
	"agrirent/shared/constant"
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ConvertStringToFloat parses optional numeric query values such as coordinates.
func ConvertStringToFloat(value string) *float64 {
	if value == "" {
		return nil
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to float")

		return nil
	}

	return &floatValue
}

// BuildCacheKey joins a key prefix with identifying parts, e.g. "equipment:get:42".
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + cacheKeySeparator + strings.Join(parts, cacheKeySeparator)
}

// BuildCacheKeyWithQuery appends the encoded query so that every filter combination
// gets its own entry. Values are encoded in key order.
func BuildCacheKeyWithQuery(prefix string, query url.Values) string {
	encoded := query.Encode()
	if encoded == constant.Empty {
		encoded = "all"
	}

	return BuildCacheKey(prefix, encoded)
}

// InvalidateCaches clears every key starting with one of the given prefixes.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}

// ResolveAssetURL turns the relative image paths stored by the backend into absolute URLs.
func ResolveAssetURL(host, path string) string {
	if path == constant.Empty || host == constant.Empty {
		return path
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return strings.TrimRight(host, "/") + "/" + strings.TrimLeft(path, "/")
}

// UserRole returns the role of the logged in user bound to ctx, or an empty string.
func UserRole(ctx context.Context) string {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return role
}
