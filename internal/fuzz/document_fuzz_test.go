package fuzztests

import (
	"context"
	"testing"
	"time"

	"asm09/internal/document"
	"asm09/internal/source"
	"asm09/internal/symbols"
)

// parseTimeout bounds a single document parse; exceeding it means a hang.
const parseTimeout = 5 * time.Second

func FuzzDocumentNoHang(f *testing.F) {
	addSeeds(f)
	f.Add([]byte("a struct\nb a\n lda #b.c.d.e\n ends\n ends\n"))
	f.Add([]byte(" include \"self.asm\"\n include \"self.asm\"\n"))

	f.Fuzz(func(t *testing.T, input []byte) {
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		const uri = "file:///fuzz/self.asm"
		mgr := symbols.NewManager()
		done := make(chan *document.Document, 1)
		go func() {
			done <- document.Parse(context.Background(), source.NewFile(uri, clamp(input), source.FileVirtual), mgr)
		}()

		select {
		case doc := <-done:
			if doc == nil {
				t.Fatal("parse returned no document")
			}
			for _, s := range mgr.Implementations() {
				if s.DocumentURI != uri {
					t.Fatalf("symbol %q attributed to %q", s.Text, s.DocumentURI)
				}
			}
		case <-ctx.Done():
			t.Fatalf("parse did not finish within %v", parseTimeout)
		}
	})
}
