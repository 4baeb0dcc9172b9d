//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecdh/pkg/ecdh"
)

// The wasm build exposes one exchange on brainpoolP192t1. Scalars and
// points cross the JS boundary hex encoded; big integers never touch
// JSON numbers, which lose precision in JS.
var exchange = ecdh.NewExchange(ecdh.BrainpoolP192t1(), nil, nil)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECDH WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECDH", map[string]interface{}{
		"GenerateKeyPair": js.FuncOf(GenerateKeyPair),
		"Initiate":        js.FuncOf(Initiate),
		"Respond":         js.FuncOf(Respond),
	})

	<-c
}

// GenerateKeyPair draws a fresh key pair.
// Arguments: none
// Returns:
// JSON {"privateKey": hex scalar, "publicKey": hex compressed point} or "error: ..."
func GenerateKeyPair(this js.Value, args []js.Value) interface{} {
	priv, err := exchange.GenerateKey()
	if err != nil {
		return fmt.Sprintf("error: key generation failed: %v", err)
	}
	return marshalJSON(map[string]interface{}{
		"privateKey": priv.D.Text(16),
		"publicKey":  hex.EncodeToString(priv.Bytes()),
	})
}

// Initiate runs the initiator side against a responder's public key.
// Arguments:
// 0: hex compressed public key of the responder
// Returns:
// JSON {"ephemeral": hex compressed point, "key": hex derived key} or "error: ..."
func Initiate(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (peerPublicKeyHex)"
	}

	peer, err := parsePublicHex(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	h, err := exchange.Initiate(peer)
	if err != nil {
		return fmt.Sprintf("error: initiate failed: %v", err)
	}
	return marshalJSON(map[string]interface{}{
		"ephemeral": hex.EncodeToString(h.Ephemeral.Bytes()),
		"key":       hex.EncodeToString(h.Key),
	})
}

// Respond runs the responder side.
// Arguments:
// 0: hex private scalar
// 1: hex compressed ephemeral point received from the initiator
// Returns:
// JSON {"key": hex derived key} or "error: ..."
func Respond(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (privateKeyHex, ephemeralHex)"
	}

	d, ok := new(big.Int).SetString(args[0].String(), 16)
	if !ok {
		return "error: private key is not valid hex"
	}
	priv, err := ecdh.BrainpoolP192t1().NewPrivateKey(d)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	ephemeral, err := parsePublicHex(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	key, err := exchange.Respond(priv, ephemeral)
	if err != nil {
		return fmt.Sprintf("error: respond failed: %v", err)
	}
	return marshalJSON(map[string]interface{}{
		"key": hex.EncodeToString(key),
	})
}

// Helpers

func parsePublicHex(s string) (*ecdh.PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("public key is not valid hex: %w", err)
	}
	return ecdh.BrainpoolP192t1().ParsePublicKey(raw)
}

func marshalJSON(v map[string]interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}
