package suite

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSource string

// Load error codes.
const (
	ErrCodeGeneric    = "E001" // unclassified load error
	ErrCodeNotFound   = "E002" // suite file not found
	ErrCodeUnreadable = "E003" // suite file could not be read
	ErrCodeSyntax     = "E004" // YAML syntax error
	ErrCodeSchema     = "E005" // document violates the suite schema
	ErrCodeDecode     = "E006" // strict decode into suite types failed

	// Entry compilation errors
	ErrCodeUnknownKind  = "E101" // check kind is not recognized
	ErrCodeMissingParam = "E102" // check entry is missing a required parameter
)

// LoadError describes a failure to load, validate, or compile a suite.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // position of the offending node, if known
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsLoadError returns true if the error is a suite load error. Uses
// errors.As to handle wrapped errors.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// Load reads a suite file, validates it against the embedded schema,
// and decodes it. It fails on the first error found.
func Load(path string) (*Suite, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("suite file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeUnreadable, Message: fmt.Sprintf("reading suite file: %v", err)}
	}

	if err := validateDocument(path, raw); err != nil {
		return nil, err
	}

	// The schema has passed; the strict decode catches drift between
	// schema.cue and the Suite struct itself.
	var s Suite
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, &LoadError{Code: ErrCodeDecode, Message: fmt.Sprintf("decoding suite: %v", err)}
	}
	return &s, nil
}

// validateDocument unifies the raw YAML with #Suite from the embedded
// schema. Closed definitions reject unknown fields and wrongly typed
// values with the position of the offending node.
func validateDocument(path string, raw []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource).LookupPath(cue.ParsePath("#Suite"))
	if err := schema.Err(); err != nil {
		return &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling suite schema: %v", err)}
	}

	file, err := cueyaml.Extract(path, raw)
	if err != nil {
		return positionedError(ErrCodeSyntax, err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return positionedError(ErrCodeSyntax, err)
	}

	if err := schema.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return positionedError(ErrCodeSchema, err)
	}
	return nil
}

// positionedError converts a CUE error into a LoadError carrying the
// first reported position.
func positionedError(code string, err error) *LoadError {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, Message: err.Error()}
	}
	first := errs[0]
	le := &LoadError{Code: code, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
