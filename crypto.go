package mpw

import (
	"bytes"
	"fmt"

	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	"github.com/tink-crypto/tink-go/v2/mac"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"
	"google.golang.org/protobuf/proto"
)

const (
	hmacKeyTypeURL = "type.googleapis.com/google.crypto.tink.HmacKey"

	// HMAC-SHA256 with the full, untruncated tag
	hmacTagSize  = 32
	hmacHashType = 3 // common.proto HashType SHA256
)

// computeHMAC returns HMAC-SHA256(key, message) through a Tink MAC primitive.
func computeHMAC(key, message []byte) ([]byte, error) {
	handle, err := newHMACKeyset(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyset: %w", err)
	}

	primitive, err := mac.New(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to create MAC: %w", err)
	}

	tag, err := primitive.ComputeMAC(message)
	if err != nil {
		return nil, fmt.Errorf("failed to compute MAC: %w", err)
	}
	if len(tag) != hmacTagSize {
		Wipe(tag)
		return nil, fmt.Errorf("unexpected MAC length %d", len(tag))
	}

	return tag, nil
}

// newHMACKeyset wraps a raw key in a single-key RAW keyset so the tag is the
// bare HMAC output with no Tink prefix.
func newHMACKeyset(key []byte) (*keyset.Handle, error) {
	keyValue := buildHMACKeyValue(key)
	defer Wipe(keyValue)

	ks := &tinkpb.Keyset{
		PrimaryKeyId: 1,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         hmacKeyTypeURL,
				Value:           keyValue,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
			Status:           tinkpb.KeyStatusType_ENABLED,
			KeyId:            1,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	}

	serialized, err := proto.Marshal(ks)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keyset: %w", err)
	}
	defer Wipe(serialized)

	return insecurecleartextkeyset.Read(
		keyset.NewBinaryReader(bytes.NewReader(serialized)),
	)
}

// buildHMACKeyValue builds the protobuf-encoded HmacKey value
func buildHMACKeyValue(key []byte) []byte {
	// See: https://github.com/tink-crypto/tink/blob/master/proto/hmac.proto

	// Build params submessage
	params := []byte{}
	params = append(params, 0x08)                          // field 1, varint
	params = append(params, encodeVarint(hmacHashType)...) // hash
	params = append(params, 0x10)                          // field 2, varint
	params = append(params, encodeVarint(hmacTagSize)...)  // tag_size

	// Build main message
	result := make([]byte, 0, 4+len(params)+5+len(key))
	result = append(result, 0x08)                              // field 1 (version), varint
	result = append(result, 0x00)                              // version = 0
	result = append(result, 0x12)                              // field 2 (params), length-delimited
	result = append(result, byte(len(params)))                 // params length
	result = append(result, params...)                         // params
	result = append(result, 0x1a)                              // field 3 (key_value), length-delimited
	result = append(result, encodeVarint(uint32(len(key)))...) // key length
	result = append(result, key...)                            // key

	return result
}

func encodeVarint(v uint32) []byte {
	var buf []byte
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	buf = append(buf, byte(v))
	return buf
}
