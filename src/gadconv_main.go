package osmocore

/*------------------------------------------------------------------
 *
 * Purpose:   	Standalone utility to convert between GAD location
 *		estimates and their hex encoded PDU form.
 *
 * Inputs:	Hex encoded PDUs from the command line or stdin, e.g.
 *
 *		gadconv 10 20 b6 0c 1d dd de 28
 *		echo "1020b60c1dddde28" | gadconv
 *
 *		or values to encode:
 *
 *		gadconv --encode --lat 23.000006 --lon 42.000002 --unc-m 442.592
 *		gadconv --file estimates.yaml
 *
 * Outputs:	stdout.  Decoded estimates are printed in the usual
 *		"Type{field=value,...}" form; encoded estimates as a
 *		hex string followed by the re-decoded (clamped) values,
 *		so the quantization loss is visible immediately.
 *
 *---------------------------------------------------------------*/

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
	"github.com/tzneal/coordconv"
	"gopkg.in/yaml.v3"
)

var gadconvVerbose bool
var gadconvUTM bool
var gadconvTimestampFormat string

func GadConvMain() {
	/*
	 * Extract command line args.
	 */
	var _encode = pflag.BoolP("encode", "e", false, "Encode instead of decode.  Requires --lat, --lon and --unc-m.")
	var _lat = pflag.Float64("lat", 0, "Latitude in decimal degrees for --encode.  Negative for south.")
	var _lon = pflag.Float64("lon", 0, "Longitude in decimal degrees for --encode.  Negative for west.")
	var _uncM = pflag.Float64("unc-m", 0, "Uncertainty circle radius in meters for --encode.")
	var _file = pflag.StringP("file", "f", "", "Encode a list of location estimates from this YAML file.")
	var _utm = pflag.BoolP("utm", "u", false, "Also show decoded points as UTM / MGRS coordinates.")
	var _timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede decoded estimates with 'strftime' format time stamp.")
	var _verbose = pflag.BoolP("verbose", "v", false, "Verbose.  Show a hex dump of each PDU.")
	var _version = pflag.Bool("version", false, "Print version information and exit.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - GAD (TS 23.032) location estimate conversion.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Convert between hex encoded GAD PDUs and readable location estimates.\n")
		fmt.Fprintf(os.Stderr, "With no arguments, hex PDUs are read one per line from stdin.\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *_version {
		printVersion(false)
		return
	}

	gadconvVerbose = *_verbose
	gadconvUTM = *_utm
	gadconvTimestampFormat = *_timestampFormat

	if *_file != "" {
		GadConvEncodeFile(*_file)
		return
	}

	if *_encode {
		GadConvEncode(*_lat, *_lon, *_uncM)
		return
	}

	if pflag.NArg() > 0 {
		// All positional args together form one PDU, so both
		// "10 20 b6 0c ..." and "1020b60c..." work.
		GadConvDecodeLine(strings.Join(pflag.Args(), ""))
		return
	}

	var scanner = bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		GadConvDecodeLine(scanner.Text())
	}
}

/*------------------------------------------------------------------
 *
 * Name:	GadConvDecodeLine
 *
 * Purpose:	Decode one hex encoded GAD PDU and print it.
 *
 * Inputs:	line	- Hex string, whitespace between bytes allowed.
 *
 *---------------------------------------------------------------*/

func GadConvDecodeLine(line string) {
	var cleaned = strings.Join(strings.Fields(line), "")
	if cleaned == "" {
		return
	}

	var data, hexErr = hex.DecodeString(cleaned)
	if hexErr != nil {
		log.Error("Not a valid hex PDU", "input", line, "err", hexErr)
		return
	}

	if gadconvVerbose {
		fmt.Printf("%s", HexDump(data))
	}

	var shape, decodeErr = GadDec(data)
	if decodeErr != nil {
		log.Error("Decode failed", "err", decodeErr)
		return
	}

	var ts string
	if gadconvTimestampFormat != "" {
		var formattedTime, tsErr = strftime.Format(gadconvTimestampFormat, time.Now())
		if tsErr != nil {
			log.Error("Bad timestamp format, ignoring", "format", gadconvTimestampFormat, "err", tsErr)
			gadconvTimestampFormat = ""
		} else {
			ts = "[" + formattedTime + "] "
		}
	}

	fmt.Printf("%s%s\n", ts, GadToStr(shape))

	if gadconvUTM {
		switch v := shape.(type) {
		case GadEllPoint:
			gadConvShowUTM(v.Lat, v.Lon)
		case GadEllPointUncCircle:
			gadConvShowUTM(v.Lat, v.Lon)
		}
	}
}

/*------------------------------------------------------------------
 *
 * Name:	GadConvEncode
 *
 * Purpose:	Encode one uncertainty circle estimate and print the
 *		hex PDU plus the values it will decode back to.
 *
 * Inputs:	latDeg, lonDeg	- Decimal degrees.
 *		uncM		- Uncertainty circle radius in meters.
 *
 *---------------------------------------------------------------*/

func GadConvEncode(latDeg float64, lonDeg float64, uncM float64) {
	if uncM < 0 {
		log.Warn("Negative uncertainty radius treated as zero", "unc-m", uncM)
		uncM = 0
	}

	var shape = GadEllPointUncCircle{
		Lat: int32(math.Round(latDeg * 1e6)),
		Lon: int32(math.Round(lonDeg * 1e6)),
		Unc: uint32(math.Round(uncM * 1000)),
	}

	var data, encodeErr = GadEnc(nil, shape)
	if encodeErr != nil {
		log.Error("Encode failed", "err", encodeErr)
		return
	}

	fmt.Printf("%s\n", hex.EncodeToString(data))

	if gadconvVerbose {
		fmt.Printf("%s", HexDump(data))
	}

	// Show the clamped values so quantization loss is visible.
	var decoded, decodeErr = GadDec(data)
	if decodeErr != nil {
		log.Error("Re-decode of freshly encoded PDU failed", "err", decodeErr)
		return
	}

	fmt.Printf("%s\n", GadToStr(decoded))
}

// One entry of a --file YAML document:
//
//	- type: Ellipsoid-point-with-uncertainty-circle
//	  lat: 23.000006
//	  lon: 42.000002
//	  unc-m: 442.592
type gadConvEntry struct {
	Type string  `yaml:"type"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
	UncM float64 `yaml:"unc-m"`
}

func GadConvEncodeFile(path string) {
	var raw, readErr = os.ReadFile(path)
	if readErr != nil {
		log.Error("Cannot read estimates file", "path", path, "err", readErr)
		return
	}

	var entries []gadConvEntry

	var yamlErr = yaml.Unmarshal(raw, &entries)
	if yamlErr != nil {
		log.Error("Cannot parse estimates file", "path", path, "err", yamlErr)
		return
	}

	for i, entry := range entries {
		if entry.Type != GadTypeName(GAD_TYPE_ELL_POINT_UNC_CIRCLE) {
			log.Warn("Skipping entry with unsupported type", "index", i, "type", entry.Type)
			continue
		}

		GadConvEncode(entry.Lat, entry.Lon, entry.UncM)
	}
}

func gadConvShowUTM(latMicroDeg int32, lonMicroDeg int32) {
	var latlng = s2.LatLng{
		Lat: s1.Angle(d2r(float64(latMicroDeg) / 1e6)),
		Lng: s1.Angle(d2r(float64(lonMicroDeg) / 1e6)),
	}

	var utmCoord, utmErr = coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
	if utmErr == nil {
		fmt.Printf("UTM zone = %d, hemisphere = %c, easting = %.0f, northing = %.0f\n",
			utmCoord.Zone, HemisphereToRune(utmCoord.Hemisphere), utmCoord.Easting, utmCoord.Northing)
	} else {
		fmt.Printf("Conversion to UTM failed: %s\n", utmErr)

		// MGRS could still succeed, keep going.
	}

	var mgrsCoord, mgrsErr = coordconv.DefaultMGRSConverter.ConvertFromGeodetic(latlng, 5)
	if mgrsErr == nil {
		fmt.Printf("MGRS = %s\n", mgrsCoord)
	} else {
		fmt.Printf("Conversion to MGRS failed: %s\n", mgrsErr)
	}
}

func d2r(degrees float64) float64 {
	return degrees * math.Pi / 180
}
