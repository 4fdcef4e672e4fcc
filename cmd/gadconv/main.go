/* GAD (TS 23.032) location estimate conversion utility */
package main

import (
	osmocore "github.com/synestematic/libosmocore/src"
)

func main() {
	osmocore.GadConvMain()
}
