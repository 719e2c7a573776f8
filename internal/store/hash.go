package store

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/hexlang/hexc/internal/sig"
)

// Domain prefix for content-addressed compilation identity. Version
// suffix enables future algorithm migration.
const domainCompilation = "hexc/compilation/v1"

// hashWithDomain computes SHA-256 with domain separation. The null
// byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// CompilationHash computes the content hash of one compilation: the
// source expression plus the signature table it was compiled against.
// Table entries are encoded in sorted name order with length-prefixed
// fields, so the hash is independent of insertion order and unaffected
// by delimiter collisions in names. Names and types are already
// NFC-normalized by sig.Table.
func CompilationHash(source string, table *sig.Table) string {
	var b strings.Builder
	writeField(&b, source)
	if table != nil {
		for _, name := range table.Names() {
			signature, _ := table.Get(name)
			writeField(&b, name)
			writeList(&b, signature.Inputs)
			writeList(&b, signature.Outputs)
		}
	}
	return hashWithDomain(domainCompilation, []byte(b.String()))
}

func writeField(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}

func writeList(b *strings.Builder, items []string) {
	b.WriteString(strconv.Itoa(len(items)))
	b.WriteByte(';')
	for _, item := range items {
		writeField(b, item)
	}
}
