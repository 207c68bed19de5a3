package webconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/drone/envsubst"

	"webappinit/internal/config"
)

// configTemplate mirrors the heredoc the container used to write at
// boot: a strict-mode script assigning the browser-global CONFIG object
// the front end reads at load time. Substitution is shell-style ${VAR},
// same as the original entrypoint.
const configTemplate = `'use strict';

window.CONFIG = {
    DDBAlbumMetadataTable: "${ALBUM_METADATA_TABLE}",
    CognitoIdentityPool: "${COGNITO_IDENTITY_POOL}",
    Region: "${AWS_REGION}",
    DDBImageMetadataTable: "${IMAGE_METADATA_TABLE}",
    S3PhotoRepoBucket: "${PHOTO_REPO_S3_BUCKET}",
    DescribeExecutionLambda: "${DESCRIBE_EXECUTION_FUNCTION_NAME}"
};
`

// Record is the fixed-shape configuration handed to the browser app.
// The key set never changes: an unset source variable yields an empty
// string field, not a missing key. Built once from an environment
// snapshot and never mutated afterwards.
type Record struct {
	AlbumMetadataTable      string
	CognitoIdentityPool     string
	Region                  string
	ImageMetadataTable      string
	PhotoRepoBucket         string
	DescribeExecutionLambda string
}

// NewRecord builds the record from an environment snapshot. Missing
// keys read as empty strings, so the result is always fully populated.
func NewRecord(env map[string]string) Record {
	return Record{
		AlbumMetadataTable:      env[config.EnvAlbumMetadataTable],
		CognitoIdentityPool:     env[config.EnvCognitoIdentityPool],
		Region:                  env[config.EnvAWSRegion],
		ImageMetadataTable:      env[config.EnvImageMetadataTable],
		PhotoRepoBucket:         env[config.EnvPhotoRepoBucket],
		DescribeExecutionLambda: env[config.EnvDescribeExecutionLambda],
	}
}

// value resolves a template variable name to the record field it
// sources from. Unknown names render as empty, matching shell
// substitution of an unset variable.
func (r Record) value(name string) string {
	switch name {
	case config.EnvAlbumMetadataTable:
		return r.AlbumMetadataTable
	case config.EnvCognitoIdentityPool:
		return r.CognitoIdentityPool
	case config.EnvAWSRegion:
		return r.Region
	case config.EnvImageMetadataTable:
		return r.ImageMetadataTable
	case config.EnvPhotoRepoBucket:
		return r.PhotoRepoBucket
	case config.EnvDescribeExecutionLambda:
		return r.DescribeExecutionLambda
	}
	return ""
}

// escaper keeps every substituted value a valid JS string literal. The
// original script substituted raw bytes and broke on embedded quotes.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Render serializes the record as the config script. The output is
// deterministic: the same record always renders byte-identical text.
func Render(rec Record) (string, error) {
	out, err := envsubst.Eval(configTemplate, func(name string) string {
		return escaper.Replace(rec.value(name))
	})
	if err != nil {
		return "", fmt.Errorf("rendering config template: %w", err)
	}
	return out, nil
}

// WriteFile renders the record and overwrites path with the result.
// Truncate-and-write, no backup of a prior version: the file is
// rewritten fresh on every container start. On failure a partial file
// may remain; the caller aborts the boot either way.
func WriteFile(path string, rec Record) error {
	content, err := Render(rec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
