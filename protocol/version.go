package protocol

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is a Minecraft protocol version number as sent in the handshake.
type Version int32

const (
	V1_7_2  Version = 4
	V1_7_6  Version = 5
	V1_8    Version = 47
	V1_9    Version = 107
	V1_9_4  Version = 110
	V1_10   Version = 210
	V1_11   Version = 315
	V1_11_1 Version = 316
	V1_12   Version = 335
	V1_12_1 Version = 338
	V1_12_2 Version = 340
	V1_13   Version = 393
	V1_13_1 Version = 401
	V1_13_2 Version = 404
	V1_14   Version = 477
	V1_14_1 Version = 480
	V1_14_2 Version = 485
	V1_14_3 Version = 490
	V1_14_4 Version = 498
	V1_15   Version = 573
	V1_15_1 Version = 575
	V1_15_2 Version = 578
	V1_16   Version = 735
	V1_16_1 Version = 736
	V1_16_2 Version = 751
	V1_16_3 Version = 753
	V1_16_4 Version = 754
	V1_17   Version = 755
	V1_17_1 Version = 756
	V1_18   Version = 757
	V1_18_2 Version = 758
	V1_19   Version = 759
	V1_19_2 Version = 760
	V1_19_3 Version = 761
	V1_19_4 Version = 762
	V1_20   Version = 763

	V1_7 = V1_7_2

	First  = V1_7_2
	Latest = V1_20
)

var versionToString = map[Version]string{
	V1_7_2:  "1.7.2",
	V1_7_6:  "1.7.6",
	V1_8:    "1.8",
	V1_9:    "1.9",
	V1_9_4:  "1.9.4",
	V1_10:   "1.10",
	V1_11:   "1.11",
	V1_11_1: "1.11.1",
	V1_12:   "1.12",
	V1_12_1: "1.12.1",
	V1_12_2: "1.12.2",
	V1_13:   "1.13",
	V1_13_1: "1.13.1",
	V1_13_2: "1.13.2",
	V1_14:   "1.14",
	V1_14_1: "1.14.1",
	V1_14_2: "1.14.2",
	V1_14_3: "1.14.3",
	V1_14_4: "1.14.4",
	V1_15:   "1.15",
	V1_15_1: "1.15.1",
	V1_15_2: "1.15.2",
	V1_16:   "1.16",
	V1_16_1: "1.16.1",
	V1_16_2: "1.16.2",
	V1_16_3: "1.16.3",
	V1_16_4: "1.16.4",
	V1_17:   "1.17",
	V1_17_1: "1.17.1",
	V1_18:   "1.18",
	V1_18_2: "1.18.2",
	V1_19:   "1.19",
	V1_19_2: "1.19.2",
	V1_19_3: "1.19.3",
	V1_19_4: "1.19.4",
	V1_20:   "1.20",
}

// releases sharing a protocol number with the entry in versionToString
var aliases = map[string]Version{
	"1.7.5":  V1_7_2,
	"1.7.10": V1_7_6,
	"1.8.9":  V1_8,
	"1.16.5": V1_16_4,
	"1.18.1": V1_18,
	"1.19.1": V1_19_2,
	"1.20.1": V1_20,
}

var stringToVersion = make(map[string]Version)

func init() {
	for v, s := range versionToString {
		stringToVersion[s] = v
	}
	for s, v := range aliases {
		stringToVersion[s] = v
	}
}

func (v Version) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return strconv.Itoa(int(v))
}

// VersionFromString resolves a release name such as "1.16.5" to its protocol
// version. Unknown patches fall back to the nearest lower known patch of the
// same minor release, and a bare "major.minor" resolves to its newest patch.
func VersionFromString(s string) (Version, bool) {
	if version, ok := stringToVersion[s]; ok {
		return version, true
	}

	want, err := semver.NewVersion(s)
	if err != nil || want.Prerelease() != "" || want.Metadata() != "" {
		return 0, false
	}

	hasPatch := strings.Count(s, ".") >= 2

	var best *semver.Version
	var bestVersion Version
	for knownStr, knownVersion := range stringToVersion {
		known, err := semver.NewVersion(knownStr)
		if err != nil || known.Major() != want.Major() || known.Minor() != want.Minor() {
			continue
		}
		if hasPatch && known.GreaterThan(want) {
			continue
		}
		if best == nil || known.GreaterThan(best) {
			best = known
			bestVersion = knownVersion
		}
	}
	if best == nil {
		return 0, false
	}

	return bestVersion, true
}
