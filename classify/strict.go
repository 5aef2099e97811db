//go:build svexprdebug

package classify

// strict makes unmapped operator tags panic.
const strict = true
