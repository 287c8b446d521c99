package internal

// Version is the mdbook-translator release version
const Version = "0.3.0"

// MdBookVersionReq is the semver range of mdBook this preprocessor was
// built against. A book built with an mdBook outside this range still
// runs, but a warning is printed to stderr.
const MdBookVersionReq = "~0.4"
