package effects

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

const (
	// LineBreak terminates every change in a description
	LineBreak = "&#13;"

	// DescriptionError is returned in place of a description that could not be built
	DescriptionError = "Error: see logs"

	unsupportedModeText = "Unsupported effect mode"

	KeyMultiply = "arm5e.sheet.activeEffect.multiply"
	KeyAdd      = "arm5e.sheet.activeEffect.add"
)

//go:generate mockgen -destination=mocks/mock_localizer.go -package=mocks -source=describe.go Localizer

// Localizer resolves localization keys to display strings
type Localizer interface {
	Localize(key string) string
	Format(key string, params map[string]string) string
}

// RendererConfig holds the collaborators of a Renderer
type RendererConfig struct {
	Table     *Table
	Localizer Localizer
	Logger    *zap.Logger
}

// Renderer builds human-readable descriptions of records
type Renderer struct {
	table     *Table
	localizer Localizer
	logger    *zap.Logger
}

// NewRenderer creates a renderer; the default table is used when none is given
func NewRenderer(cfg *RendererConfig) (*Renderer, error) {
	if cfg == nil || cfg.Localizer == nil {
		return nil, errors.InvalidArgument("renderer requires a localizer")
	}

	table := cfg.Table
	if table == nil {
		table = DefaultTable()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Renderer{
		table:     table,
		localizer: cfg.Localizer,
		logger:    logger,
	}, nil
}

// Describe renders every change of the record in order. It never fails:
// on any lookup error the record is logged and DescriptionError returned.
func (r *Renderer) Describe(rec *Record) (descr string) {
	if rec == nil {
		return DescriptionError
	}
	defer func() {
		if p := recover(); p != nil {
			r.logFailure(rec, fmt.Errorf("panic: %v", p))
			descr = DescriptionError
		}
	}()

	var b strings.Builder
	for i, e := range rec.entries {
		text, err := r.DescribeEntry(e)
		if err != nil {
			r.logFailure(rec, errors.Wrapf(err, "change %d", i))
			return DescriptionError
		}
		b.WriteString(text)
		b.WriteString(LineBreak)
	}
	return b.String()
}

// DescribeEntry renders a single change without the trailing line break
func (r *Renderer) DescribeEntry(e Entry) (string, error) {
	typeDef, subDef, err := r.table.Lookup(e.Type, e.Subtype)
	if err != nil {
		return "", err
	}

	var subtype string
	if e.Option != "" {
		subtype = r.localizer.Format(subDef.Mnemonic, map[string]string{"option": e.Option})
	} else {
		subtype = r.localizer.Localize(subDef.Mnemonic)
	}

	var b strings.Builder
	b.WriteString(r.localizer.Localize(typeDef.Mnemonic))
	b.WriteString(": ")

	value := formatValue(e.Value)
	switch e.Mode {
	case ModeMultiply:
		b.WriteString(r.localizer.Format(KeyMultiply, map[string]string{"type": subtype}))
		b.WriteString(sign(e.Value))
		b.WriteString(value)
	case ModeAdd:
		b.WriteString(r.localizer.Format(KeyAdd, map[string]string{
			"score": sign(e.Value) + value,
			"value": subtype,
		}))
	case ModeOverride, ModeUpgrade:
		// the subtype is still looked up but not printed
		b.WriteString(" = ")
		b.WriteString(value)
	default:
		b.WriteString(unsupportedModeText)
	}
	return b.String(), nil
}

func (r *Renderer) logFailure(rec *Record, err error) {
	dump, marshalErr := json.Marshal(rec)
	if marshalErr != nil {
		dump = []byte(fmt.Sprintf("%+v", rec))
	}
	r.logger.Error("Build effect description failed",
		zap.String("record_id", rec.ID),
		zap.ByteString("record", dump),
		zap.Error(err),
	)
}

func sign(v float64) string {
	if v > 0 {
		return "+"
	}
	return ""
}
