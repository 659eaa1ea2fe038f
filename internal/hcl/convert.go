package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/scenec/internal/ctxlog"
	"github.com/vk/scenec/internal/scene"
)

var vectorType = cty.List(cty.Number)

// isExprDefined checks if an HCL expression was actually present in the
// source. gohcl fills omitted optional expression fields with zero-width
// placeholder expressions, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	defined := rng.End.Byte > rng.Start.Byte
	if defined {
		ctxlog.FromContext(ctx).Debug("HCL attribute present.", "attribute", attrName, "hcl_range", rng.String())
	}
	return defined
}

// decodeVector evaluates a 3 or 4 element number list. A missing fourth
// component keeps the W of base.
func decodeVector(ctx context.Context, expr hcl.Expression, base scene.Vec4) (scene.Vec4, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	rng := expr.Range()

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return base, diags
	}
	if val.IsNull() {
		return base, hcl.Diagnostics{diagError(&rng, "Invalid vector", "A vector must not be null.")}
	}

	converted, err := convert.Convert(val, vectorType)
	if err != nil {
		return base, hcl.Diagnostics{diagError(&rng, "Invalid vector",
			fmt.Sprintf("Cannot convert %s to a list of numbers: %s.", val.Type().FriendlyName(), err))}
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	var nums []float64
	if err := gocty.FromCtyValue(converted, &nums); err != nil {
		return base, hcl.Diagnostics{diagError(&rng, "Invalid vector", err.Error())}
	}

	switch len(nums) {
	case 3:
		return scene.Vec4{X: nums[0], Y: nums[1], Z: nums[2], W: base.W}, nil
	case 4:
		return scene.Vec4{X: nums[0], Y: nums[1], Z: nums[2], W: nums[3]}, nil
	default:
		return base, hcl.Diagnostics{diagError(&rng, "Invalid vector",
			fmt.Sprintf("A vector needs 3 or 4 numbers, got %d.", len(nums)))}
	}
}
