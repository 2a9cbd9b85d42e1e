package buildsys

import (
	"slices"

	"github.com/goplus/extopt/formula"
	"github.com/goplus/extopt/pkgs/mod/versions"
)

// CPPExt is emitted whenever the gate is open, before any variant flag.
const CPPExt = "--cpp_ext"

// Flag maps a variant to the token passed to the backend when it is on.
type Flag struct {
	Variant formula.Variant
	Token   string
}

// The table order is the emission order. Downstream caches key on the
// joined arguments, so it must not change.
var table = []Flag{
	{formula.CUDA, "--cuda_ext"},
	{formula.DistAdam, "--distributed_adam"},
	{formula.DistLamb, "--distributed_lamb"},
	{formula.PermSearch, "--permutation_search"},
	{formula.BNP, "--bnp"},
	{formula.XEntropy, "--xentropy"},
	{formula.FocalLoss, "--focal_loss"},
	{formula.GroupNorm, "--group_norm"},
	{formula.IndexMul2D, "--index_mul_2d"},
	{formula.FastLayerNorm, "--fast_layer_norm"},
	{formula.FMHA, "--fmha"},
	{formula.FastMultiheadAttn, "--fast_multihead_attn"},
	{formula.Transducer, "--transducer"},
	{formula.CudnnGBN, "--cudnn_gbn"},
	{formula.PeerMemory, "--peer_memory"},
	{formula.NCCLP2P, "--nccl_p2p"},
	{formula.FastBottleneck, "--fast_bottleneck"},
	{formula.FusedConvBiasReLU, "--fused_conv_bias_relu"},
	{formula.GPUDirectStorage, "--gpu_direct_storage"},
}

// Table returns the flag table in emission order.
func Table() []Flag {
	return slices.Clone(table)
}

// TokenOf returns the flag token of variant v.
func TokenOf(v formula.Variant) (string, bool) {
	i := slices.IndexFunc(table, func(f Flag) bool { return f.Variant == v })
	if i < 0 {
		return "", false
	}
	return table[i].Token, true
}

// Gate requires a dependency version to lie in Range before any flag is
// emitted.
type Gate struct {
	Dependency string
	Range      versions.Range
}

// FrameworkGate is the gate Translate applies.
var FrameworkGate = Gate{
	Dependency: formula.Framework,
	Range:      versions.MustParseRange("1.0:"),
}

// Open reports whether the gate lets flags through for spec. A missing
// dependency keeps it closed.
func (g Gate) Open(spec *formula.Spec) bool {
	v, ok := spec.DependencyVersion(g.Dependency)
	return ok && g.Range.Contains(v)
}

// Translate returns the flag tokens for spec: CPPExt followed by the token
// of every enabled variant in table order. When FrameworkGate is closed the
// result is empty, whatever the variants say, and no error is reported.
func Translate(spec *formula.Spec) []string {
	if !FrameworkGate.Open(spec) {
		return []string{}
	}
	out := make([]string, 0, 1+len(table))
	out = append(out, CPPExt)
	for _, f := range table {
		if spec.Enabled(f.Variant) {
			out = append(out, f.Token)
		}
	}
	return out
}
