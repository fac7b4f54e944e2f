// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/txline/sweep"
)

// csvHeader is the fixed column layout; alpha_db is per Options.Unit.
var csvHeader = []string{"line", "kind", "freq_hz", "z0_re", "z0_im", "alpha_np_m", "beta_rad_m", "alpha_db"}

func writeCSV(w io.Writer, series []sweep.Series, o Options) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	unit := o.unit()
	for _, s := range series {
		db := s.AttenuationDB(unit)
		for i := range s.Freq {
			record := []string{
				s.Name,
				s.Kind.String(),
				formatFloat(s.Freq[i]),
				formatFloat(real(s.Z0[i])),
				formatFloat(imag(s.Z0[i])),
				formatFloat(s.Alpha[i]),
				formatFloat(s.Beta[i]),
				formatFloat(db[i]),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("report: write csv %s row %d: %w", s.Name, i, err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
