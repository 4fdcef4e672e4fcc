package osmocore

/*------------------------------------------------------------------
 *
 * Purpose:   	Conversion between uncertainty radii in millimeters and
 *		the TS 23.032 7 bit uncertainty codes.
 *
 * Description:	The code is an index into a fixed table of nonlinearly
 *		growing thresholds.  Encoding picks the largest index
 *		whose threshold does not exceed the value, so a decoded
 *		radius is never larger than the one that was encoded.
 *
 *---------------------------------------------------------------*/

// r = C((1+x)**K - 1)
// C = 10, x = 0.1
//
// def r(k):
//     return 10.*(((1+0.1)**k) -1 )
// for k in range(128):
//     print('%d,' % (r(k) * 1000.))
var tableUncertainty1e3 = [128]uint32{
	0, 1000, 2100, 3310, 4641, 6105, 7715, 9487, 11435, 13579, 15937, 18531, 21384, 24522, 27974, 31772, 35949,
	40544, 45599, 51159, 57274, 64002, 71402, 79543, 88497, 98347, 109181, 121099, 134209, 148630, 164494, 181943,
	201137, 222251, 245476, 271024, 299126, 330039, 364043, 401447, 442592, 487851, 537636, 592400, 652640, 718904,
	791795, 871974, 960172, 1057189, 1163908, 1281299, 1410429, 1552472, 1708719, 1880591, 2069650, 2277615,
	2506377, 2758014, 3034816, 3339298, 3674227, 4042650, 4447915, 4893707, 5384077, 5923485, 6516834, 7169517,
	7887469, 8677216, 9545938, 10501531, 11552685, 12708953, 13980849, 15379933, 16918927, 18611820, 20474002,
	22522402, 24775642, 27254206, 29980627, 32979690, 36278659, 39907525, 43899277, 48290205, 53120226, 58433248,
	64277573, 70706330, 77777964, 85556760, 94113436, 103525780, 113879358, 125268293, 137796123, 151576735,
	166735409, 183409950, 201751945, 221928139, 244121953, 268535149, 295389664, 324929630, 357423593, 393166952,
	432484648, 475734112, 523308524, 575640376, 633205414, 696526955, 766180651, 842799716, 927080688, 1019789756,
	1121769732, 1233947705, 1357343476, 1493078824, 1642387706, 1806627477,
}

// GadDecUnc decodes an uncertainty circle value to millimeters.
// Only the low 7 bits take part; bit 7 is reserved on the wire.
func GadDecUnc(unc uint8) uint32 {
	return tableUncertainty1e3[unc&0x7f]
}

// GadEncUnc encodes an uncertainty radius in millimeters, like
// GadEncLat this is useful to clamp a value to an actually encodable
// accuracy:
//
//	setUnc := GadDecUnc(GadEncUnc(origUnc))
func GadEncUnc(mm uint32) uint8 {
	// The first table entry is 0, so anything below the second
	// threshold encodes as 0.  Scanning starts at index 1 to keep
	// that case out of the "unc - 1" arithmetic.
	for unc := 1; unc < len(tableUncertainty1e3); unc++ {
		if tableUncertainty1e3[unc] > mm {
			return uint8(unc - 1)
		}
	}

	return 127
}

// The high accuracy shapes (types 11 and 12) use a finer grained 256
// entry table.  No PDU field encoding uses it yet; the conversions
// below exist so callers can already clamp high accuracy values.
//
// r = C((1+x)**K - 1)
// C = 0.3, x = 0.02
//
// def r(k):
//     return 0.3*(((1+0.02)**k) -1 )
// for k in range(256):
//     print('%d,' % (r(k) * 1000.))
var tableHaUncertainty1e3 = [256]uint32{
	0, 6, 12, 18, 24, 31, 37, 44, 51, 58, 65, 73, 80, 88, 95, 103, 111, 120, 128, 137, 145, 154, 163, 173, 182, 192,
	202, 212, 222, 232, 243, 254, 265, 276, 288, 299, 311, 324, 336, 349, 362, 375, 389, 402, 417, 431, 445, 460,
	476, 491, 507, 523, 540, 556, 574, 591, 609, 627, 646, 665, 684, 703, 724, 744, 765, 786, 808, 830, 853, 876,
	899, 923, 948, 973, 998, 1024, 1051, 1078, 1105, 1133, 1162, 1191, 1221, 1252, 1283, 1314, 1347, 1380, 1413,
	1447, 1482, 1518, 1554, 1592, 1629, 1668, 1707, 1748, 1788, 1830, 1873, 1916, 1961, 2006, 2052, 2099, 2147,
	2196, 2246, 2297, 2349, 2402, 2456, 2511, 2567, 2625, 2683, 2743, 2804, 2866, 2929, 2994, 3060, 3127, 3195,
	3265, 3336, 3409, 3483, 3559, 3636, 3715, 3795, 3877, 3961, 4046, 4133, 4222, 4312, 4404, 4498, 4594, 4692,
	4792, 4894, 4998, 5104, 5212, 5322, 5435, 5549, 5666, 5786, 5907, 6032, 6158, 6287, 6419, 6554, 6691, 6830,
	6973, 7119, 7267, 7418, 7573, 7730, 7891, 8055, 8222, 8392, 8566, 8743, 8924, 9109, 9297, 9489, 9685, 9884,
	10088, 10296, 10508, 10724, 10944, 11169, 11399, 11633, 11871, 12115, 12363, 12616, 12875, 13138, 13407, 13681,
	13961, 14246, 14537, 14834, 15136, 15445, 15760, 16081, 16409, 16743, 17084, 17431, 17786, 18148, 18517, 18893,
	19277, 19669, 20068, 20475, 20891, 21315, 21747, 22188, 22638, 23096, 23564, 24042, 24529, 25025, 25532, 26048,
	26575, 27113, 27661, 28220, 28791, 29372, 29966, 30571, 31189, 31818, 32461, 33116, 33784, 34466, 35161, 35871,
	36594, 37332, 38085, 38852, 39635, 40434, 41249, 42080, 42927, 43792, 44674, 45573, 46491,
}

// GadDecHaUnc decodes a high accuracy uncertainty value to millimeters.
func GadDecHaUnc(unc uint8) uint32 {
	return tableHaUncertainty1e3[unc]
}

// GadEncHaUnc encodes a high accuracy uncertainty radius in
// millimeters.
func GadEncHaUnc(mm uint32) uint8 {
	for unc := 1; unc < len(tableHaUncertainty1e3); unc++ {
		if tableHaUncertainty1e3[unc] > mm {
			return uint8(unc - 1)
		}
	}

	return 255
}
