package scftests

import (
	"fmt"
	"strings"
	"time"
)

const loginMessageFormat = "登录到供应链金融系统\n地址: %s\n时间: %s"

// placeholderSignatureLength is the hex length of a 65-byte secp256k1 signature.
const placeholderSignatureLength = 130

// Signer produces the message and signature an actor presents when logging in.
type Signer interface {
	Sign(address string, issuedAt time.Time) (message string, signature string, err error)
}

// PlaceholderSigner is a test double that signs every message with a zero-filled signature of
// the right length. It is not cryptographically valid; a server that verifies signatures will
// reject it.
type PlaceholderSigner struct{}

func (PlaceholderSigner) Sign(address string, issuedAt time.Time) (string, string, error) {
	return LoginMessage(address, issuedAt), "0x" + strings.Repeat("0", placeholderSignatureLength), nil
}

// LoginMessage is the text an actor signs to log in.
func LoginMessage(address string, issuedAt time.Time) string {
	return fmt.Sprintf(loginMessageFormat, address, issuedAt.Format(time.RFC3339))
}
