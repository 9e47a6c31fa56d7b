// Package v1alpha1 is the wire contract of legality.v1alpha1.LegalityService.
// Messages travel as JSON over gRPC; clients select the codec with the
// "json" content subtype, which the client in this package does for every call.
//
// The messages are plain Go structs with no protobuf descriptors, so the
// server reflection service cannot describe LegalityService. Tools such as
// grpcurl list the service name but cannot discover its methods or build
// requests; use the `client` commands or this package's client instead.
package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype of this service
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
