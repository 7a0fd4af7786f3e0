package tracing

// Span attribute keys.
const (
	AttrTxID          = "tx.id"
	AttrTxFeePayer    = "tx.fee_payer"
	AttrTxStatus      = "tx.status"
	AttrIxIndex       = "ix.index"
	AttrIxProgram     = "ix.program"
	AttrIxName        = "ix.name"
	AttrErrorCode     = "error.code"
	AttrRPCMethod     = "rpc.method"
	AttrRPCStatusCode = "rpc.grpc.status_code"
)

// Span name prefixes.
const (
	SpanPrefixRPC         = "rpc."
	SpanPrefixInstruction = "ix."
	SpanTransaction       = "tx.execute"
)
