package transform

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

// PackagePath is the package descriptor edited by PackageMetadata.
const PackagePath = "package.json"

// Windows-only dev dependency added to package.json.
const (
	WindowsDevDependency        = "ect-bin"
	WindowsDevDependencyVersion = "^1.4.1"
)

// MetadataParseError reports a package descriptor that is not a JSON object.
// It is the only transform failure that aborts the run.
type MetadataParseError struct {
	Path string
	Err  error
}

func (e *MetadataParseError) Error() string {
	return fmt.Sprintf(messages.MetadataParseErrorFmt, e.Path, e.Err)
}

func (e *MetadataParseError) Unwrap() error {
	return e.Err
}

// PackageMetadata sets the package name and, on Windows, the ect-bin dev dependency.
func PackageMetadata() Transform {
	return Transform{
		Name:    PackagePath,
		RelPath: PackagePath,
		Edit:    RewritePackageJSON,
	}
}

// RewritePackageJSON sets "name" to p.PackageName and, when p.Windows is set,
// ensures devDependencies exists and pins ect-bin. Key order is preserved and
// the result uses 2-space indentation with a trailing newline.
func RewritePackageJSON(p Params, content []byte) ([]byte, error) {
	if !gjson.ValidBytes(content) {
		return nil, &MetadataParseError{Path: PackagePath, Err: errors.New(messages.MetadataInvalidJSON)}
	}
	if !gjson.ParseBytes(content).IsObject() {
		return nil, &MetadataParseError{Path: PackagePath, Err: errors.New(messages.MetadataNotObject)}
	}

	out, err := sjson.SetBytes(content, "name", p.PackageName)
	if err != nil {
		return nil, fmt.Errorf(messages.MetadataSetFieldFmt, "name", err)
	}
	if p.Windows {
		out, err = addDevDependency(out, WindowsDevDependency, WindowsDevDependencyVersion)
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimRight(out, " \t\r\n"), "", "  "); err != nil {
		return nil, &MetadataParseError{Path: PackagePath, Err: err}
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func addDevDependency(content []byte, name string, version string) ([]byte, error) {
	devDeps := gjson.GetBytes(content, "devDependencies")
	var err error
	switch {
	case !devDeps.Exists() || devDeps.Type == gjson.Null:
		content, err = sjson.SetRawBytes(content, "devDependencies", []byte("{}"))
		if err != nil {
			return nil, fmt.Errorf(messages.MetadataSetFieldFmt, "devDependencies", err)
		}
	case !devDeps.IsObject():
		return nil, &MetadataParseError{Path: PackagePath, Err: errors.New(messages.MetadataDevDepsNotObject)}
	}
	content, err = sjson.SetBytes(content, "devDependencies."+name, version)
	if err != nil {
		return nil, fmt.Errorf(messages.MetadataSetFieldFmt, "devDependencies."+name, err)
	}
	return content, nil
}
