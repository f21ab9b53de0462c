package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// AFFNSpectrum is a small transmittance spectrum in plain X++(Y..Y) form.
const AFFNSpectrum = `##TITLE=Ethyl acetate
##JCAMP-DX=4.24
##DATA TYPE=INFRARED SPECTRUM
##ORIGIN=Test Lab
##OWNER=public domain
##CAS REGISTRY NO=141-78-6
##NAMES=Ethyl acetate
Acetic acid ethyl ester
##FUNCTIONAL GROUPS=ester, carbonyl
##XUNITS=1/CM
##YUNITS=TRANSMITTANCE
##XFACTOR=1
##YFACTOR=0.01
##FIRSTX=1000
##LASTX=1400
##DELTAX=100
##NPOINTS=5
##XYDATA=(X++(Y..Y))
1000 90 80 70
1300 60 50
##END=`

// DIFSpectrum is an absorbance spectrum in SQZ/DIF compressed form with a
// trailing Y-check line.
const DIFSpectrum = `##TITLE=Compressed sample
##JCAMP-DX=5.01
##XUNITS=1/CM
##YUNITS=ABSORBANCE
##XFACTOR=1
##YFACTOR=1
##FIRSTX=100
##LASTX=105
##NPOINTS=6
##XYDATA=(X++(Y..Y))
100A0JJ%j
104A1K
##END=`

// NoDataSpectrum has a header but no data block.
const NoDataSpectrum = `##TITLE=Header only
##CAS REGISTRY NO=64-17-5
##XUNITS=1/CM
##YUNITS=ABSORBANCE
##END=`

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
