// Package overlay models the rendering configurations a display's
// hardware overlay planes support.
//
// The composer reports support as a list of combinations, each a set
// of pixel formats that work jointly with a set of color dataspaces.
// Support is per-combination on purpose: hardware frequently handles
// a format only together with a restricted set of dataspaces, so two
// independent "supported formats" and "supported dataspaces" lists
// would claim joint configurations the hardware rejects.
//
// A [Properties] value is built by the process that talks to the
// composer, serialized into a parcel, and reconstructed in the
// process that decides whether to offload composition to the
// overlays. The two copies are independent; each side owns its own.
package overlay
