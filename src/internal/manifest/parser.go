package manifest

import (
	stderrors "errors"
	"fmt"
	"mime"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/valyala/fasttemplate"

	"github.com/octetpost/octetpost/src/internal/errors"
	"github.com/octetpost/octetpost/src/internal/log"
)

const (
	MediaTypeTOML = "application/toml"
	MediaTypeJSON = "application/json"

	// Line template variables.
	TemplateItem     = "item"
	TemplateQuantity = "quantity"

	DefaultLineTemplate = "{{item}}: {{quantity}}"
)

var (
	// ErrInvalidManifest matches any document that failed to decode or validate.
	ErrInvalidManifest = errors.New(errors.ErrCodeManifest, "invalid manifest")

	// ErrUnsupportedMediaType matches a body in an unknown format.
	ErrUnsupportedMediaType = errors.New(errors.ErrCodeUnsupportedMediaType, "unsupported media type")

	// ErrNotImplemented matches a recognised format that has no decoder yet.
	ErrNotImplemented = errors.New(errors.ErrCodeNotImplemented, "manifest format is not supported yet")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type decodeFunc func(body []byte) (*Manifest, error)

// Parser decodes manifest documents and renders them as text.
// It holds no per-request state and is safe for concurrent use.
type Parser struct {
	decoders map[string]decodeFunc
	template *fasttemplate.Template
}

// NewParser creates a parser rendering each order with lineTemplate.
// An empty lineTemplate selects DefaultLineTemplate.
func NewParser(lineTemplate string) (*Parser, error) {
	if lineTemplate == "" {
		lineTemplate = DefaultLineTemplate
	}

	t, err := fasttemplate.NewTemplate(lineTemplate, "{{", "}}")
	if err != nil {
		return nil, fmt.Errorf("failed to compile line template: %w", err)
	}

	return &Parser{
		decoders: map[string]decodeFunc{
			MediaTypeTOML: decodeTOML,
			MediaTypeJSON: decodeJSON,
		},
		template: t,
	}, nil
}

// Parse decodes body according to the media type in contentType.
// Parameters such as charset are ignored.
func (p *Parser) Parse(contentType string, body []byte) (*Manifest, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupportedMediaType, "unsupported media type", err)
	}

	decode, ok := p.decoders[mediaType]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedMediaType, "unsupported media type "+mediaType)
	}

	return decode(body)
}

// Render writes one line per order, separated by a newline, without a
// trailing newline. An empty manifest renders to the empty string.
func (p *Parser) Render(m *Manifest) string {
	var sb strings.Builder
	for i, o := range m.orders {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p.template.ExecuteString(map[string]interface{}{
			TemplateItem:     o.Item,
			TemplateQuantity: strconv.FormatUint(uint64(o.Quantity), 10),
		}))
	}
	return sb.String()
}

func decodeTOML(body []byte) (*Manifest, error) {
	var doc tomlDocument
	if err := toml.Unmarshal(body, &doc); err != nil {
		var derr *toml.DecodeError
		if stderrors.As(err, &derr) {
			row, col := derr.Position()
			log.Debugf("Manifest TOML error at line %d, column %d: %s", row, col, derr.Error())
			return nil, errors.NewManifestError("invalid manifest",
				fmt.Errorf("line %d, column %d: %s", row, col, derr.Error()))
		}
		return nil, errors.NewManifestError("invalid manifest", err)
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, errors.NewManifestError("invalid manifest", convertValidatorErrors(err))
	}

	return doc.manifest(), nil
}

// decodeJSON rejects JSON bodies until a manifest JSON schema is defined.
func decodeJSON(_ []byte) (*Manifest, error) {
	return nil, ErrNotImplemented
}

// convertValidatorErrors joins field errors into one readable error using
// the toml key path, e.g. "package.metadata.orders[0].item: field is required".
func convertValidatorErrors(err error) error {
	var validatorErrs validator.ValidationErrors
	if !stderrors.As(err, &validatorErrs) {
		return err
	}

	messages := make([]string, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		path := e.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}

		message := fmt.Sprintf("validation failed: %s", e.Tag())
		if e.Tag() == "required" {
			message = "field is required"
		}
		messages = append(messages, path+": "+message)
	}

	return stderrors.New(strings.Join(messages, "; "))
}
