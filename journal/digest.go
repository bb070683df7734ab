package journal

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/segmentio/fasthash/fnv1a"
	"github.com/zeebo/blake3"
)

// / Normalize source before fingerprinting so that trailing blank lines
// / and CRLF endings do not split one program into several entries.
func normalize(source string) string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return strings.TrimRight(source, "\n") + "\n"
}

// / SourceDigest is the blake3 hash of the normalized program text.
func SourceDigest(source string) string {
	h := blake3.New()
	h.WriteString(normalize(source))
	return hex.EncodeToString(h.Sum(nil))
}

// / SourceStamp folds the digest and line count into a short 64-bit id.
func SourceStamp(source string) string {
	h := blake3.New()
	text := normalize(source)
	fmt.Fprintf(h, "p: %d %s", strings.Count(text, "\n"), text)
	h2 := fnv1a.Init64
	h2 = fnv1a.AddBytes64(h2, h.Sum(nil))
	return fmt.Sprintf("%016x", h2)
}
