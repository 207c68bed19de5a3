package config

import "strings"

// Environment variables consumed at container start. All of them are
// optional: an unset variable contributes an empty string to the
// generated config, never a missing key.
const (
	EnvAlbumMetadataTable      = "ALBUM_METADATA_TABLE"
	EnvCognitoIdentityPool     = "COGNITO_IDENTITY_POOL"
	EnvAWSRegion               = "AWS_REGION"
	EnvImageMetadataTable      = "IMAGE_METADATA_TABLE"
	EnvPhotoRepoBucket         = "PHOTO_REPO_S3_BUCKET"
	EnvDescribeExecutionLambda = "DESCRIBE_EXECUTION_FUNCTION_NAME"
)

// OutputPath is where the generated config lands inside the web content
// tree served by the container. The front end loads it as a script, so
// the path is part of the contract with the browser app and is not
// configurable at runtime.
const OutputPath = "/usr/share/nginx/html/aws-config.js"

// Snapshot parses a KEY=VALUE environment list, as returned by
// os.Environ, into a map. Values may contain '='; only the first one
// separates key from value. The snapshot is taken once at startup so
// everything downstream works on plain data instead of process state.
func Snapshot(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		env[key] = value
	}
	return env
}
