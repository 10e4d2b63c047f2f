// Package i18n defines the localization seam for user-facing messages.
//
// The core never formats user-visible strings directly; every message is
// produced through a Translator callback injected by the caller. The HTTP
// layer that embeds this pipeline supplies a real catalog lookup; tests and
// the CLI use the default, which returns the key with its arguments
// appended so messages stay debuggable without a catalog.
package i18n

import (
	"fmt"
	"sort"
	"strings"
)

// Translator resolves a message key plus named arguments into a localized
// string. Implementations must be safe for concurrent use.
type Translator func(key string, args map[string]any) string

// Default returns the key unmodified, with arguments rendered in a stable
// order for readability.
func Default(key string, args map[string]any) string {
	if len(args) == 0 {
		return key
	}
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, args[name]))
	}
	return key + " (" + strings.Join(parts, ", ") + ")"
}

// Message keys produced by the pipeline.
const (
	KeyParseFailed        = "error.parse_failed"
	KeyUnbalanced         = "error.unbalanced_brackets"
	KeyMissingOperation   = "error.missing_operation_name"
	KeyEmptyOperand       = "error.empty_operand"
	KeyUnsupportedOp      = "error.unsupported_operation"
	KeyMissingAsset       = "error.missing_asset"
	KeyDivisorNotPositive = "error.divisor_not_positive"
	KeyUnevenDivision     = "error.uneven_division"
	KeyTooManyReplicas    = "error.too_many_replicas"
	KeyNonIntegerQuantity = "error.non_integer_quantity"
	KeyTooManyItems       = "error.too_many_items"
	KeySubtractionExceeds = "error.subtraction_exceeds_items"
	KeyOperandCount       = "error.operand_count"
	KeyMissingShape       = "error.missing_shape"
	KeyNotAMultiplier     = "error.not_a_multiplier"
	KeyNestedOperand      = "error.nested_operand"
	KeyBadProperty        = "error.bad_property"
	KeyBadDimensions      = "error.bad_dimensions"
)
