package bc

import (
	"bufio"
	"fmt"
	"io"
)

// WriteBC writes one BC value per line in vertex index order (§6.3),
// clamping negative values (artefacts of the clustered approximation)
// to 0.
func WriteBC(w io.Writer, bc []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range bc {
		if v < 0 {
			v = 0
		}
		if _, err := fmt.Fprintf(bw, "%g\n", v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
