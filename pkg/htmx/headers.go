package htmx

// Response headers.
const (
	HeaderHXReswap     = "HX-Reswap"
	HeaderHXRetarget   = "HX-Retarget"
	HeaderHXTrigger    = "HX-Trigger"
	HeaderHXReplaceURL = "HX-Replace-Url"
)

// Request headers.
const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXTarget     = "HX-Target"
	HeaderHXCurrentURL = "HX-Current-URL"
)
