package cdn

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/stackrox/cdn-migrator/migrator/store"
	"github.com/stackrox/cdn-migrator/pkg/errox"
	"github.com/stackrox/cdn-migrator/pkg/phpserial"
)

// ResolveCDNURL reads the CloudFront host configured for the S3 offload
// plugin and returns it as a URL. A bare host gets an http scheme.
func ResolveCDNURL(ctx context.Context, s store.Store) (string, error) {
	raw, ok, err := s.NetworkOption(ctx, S3SettingsOption)
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return "", errox.NotFound.Newf("network option %s is not set", S3SettingsOption)
	}

	v, err := phpserial.Decode(strings.TrimSpace(raw))
	if err != nil {
		return "", errors.Wrapf(errox.InvalidArgs.CausedBy(err), "decoding network option %s", S3SettingsOption)
	}
	settings, ok := v.(phpserial.Array)
	if !ok {
		return "", errox.InvalidArgs.Newf("network option %s holds a %s, expected an array", S3SettingsOption, v.Kind())
	}
	host, _ := settings.Get("cloudfront")
	str, _ := host.(phpserial.String)
	cdn := trimURL(string(str))
	if cdn == "" {
		return "", errox.NotFound.Newf("network option %s has no cloudfront host", S3SettingsOption)
	}
	if !strings.Contains(cdn, "://") {
		cdn = "http://" + cdn
	}
	return cdn, nil
}

// State describes whether a network currently serves content from a CDN.
type State struct {
	Migrated bool
	// CDNURL is the URL recorded by the last migration, if any.
	CDNURL string
}

// Status reads the migration marker of the network.
func Status(ctx context.Context, s store.Store) (State, error) {
	value, ok, err := s.NetworkOption(ctx, MarkerOption)
	if err != nil {
		return State{}, err
	}
	return State{Migrated: ok, CDNURL: value}, nil
}
