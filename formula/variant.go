package formula

import "slices"

// Variant names a boolean feature toggle of the extension build.
type Variant string

const (
	CUDA              Variant = "cuda"
	DistAdam          Variant = "dist_adam"
	DistLamb          Variant = "dist_lamb"
	PermSearch        Variant = "perm_search"
	BNP               Variant = "bnp"
	XEntropy          Variant = "xentropy"
	FocalLoss         Variant = "focal_loss"
	GroupNorm         Variant = "group_norm"
	IndexMul2D        Variant = "index_mul_2d"
	FastLayerNorm     Variant = "fast_layer_norm"
	FMHA              Variant = "fmha"
	FastMultiheadAttn Variant = "fast_multihead_attn"
	Transducer        Variant = "transducer"
	CudnnGBN          Variant = "cudnn_gbn"
	PeerMemory        Variant = "peer_memory"
	NCCLP2P           Variant = "nccl_p2p"
	FastBottleneck    Variant = "fast_bottleneck"
	FusedConvBiasReLU Variant = "fused_conv_bias_relu"
	GPUDirectStorage  Variant = "gpu_direct_storage"
)

// VariantInfo describes one entry of the variant catalog.
// Every variant defaults to off.
type VariantInfo struct {
	Name        Variant
	Description string
}

var catalog = []VariantInfo{
	{CUDA, "Build with CUDA"},
	{DistAdam, "Build with distributed Adam optimizer"},
	{DistLamb, "Build with distributed Lamb optimizer"},
	{PermSearch, "Build with permutation search"},
	{BNP, "Build with batch norm"},
	{XEntropy, "Build with cross entropy"},
	{FocalLoss, "Build with focal loss"},
	{GroupNorm, "Build with group norm"},
	{IndexMul2D, "Build with index_mul_2d"},
	{FastLayerNorm, "Build with fast layer norm"},
	{FMHA, "Build with fmha"},
	{FastMultiheadAttn, "Build with fast multihead attn"},
	{Transducer, "Build with transducer"},
	{CudnnGBN, "Build with fast cudnn gbn"},
	{PeerMemory, "Build with peer memory"},
	{NCCLP2P, "Build with nccl p2p"},
	{FastBottleneck, "Build with fast_bottleneck"},
	{FusedConvBiasReLU, "Build with fused_conv_bias_relu"},
	{GPUDirectStorage, "Build with gpu_direct_storage"},
}

// Variants returns the variant catalog in declaration order.
func Variants() []VariantInfo {
	return slices.Clone(catalog)
}

// IsVariant reports whether name is in the catalog.
func IsVariant(name string) bool {
	return slices.ContainsFunc(catalog, func(v VariantInfo) bool {
		return string(v.Name) == name
	})
}
