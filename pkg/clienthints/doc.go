// Package clienthints parses User-Agent Client Hint request headers
// (Sec-CH-UA-*) and X-Requested-With into a normalized Set.
//
// Parsing is best effort. Unknown headers are ignored, and malformed values
// leave the corresponding field empty instead of producing an error:
//
//	set := clienthints.FromHeaders([]clienthints.Header{
//	    {Name: "Sec-CH-UA-Platform", Value: `"Windows"`},
//	    {Name: "Sec-CH-UA-Mobile", Value: "?0"},
//	})
//	set.Platform // "Windows"
//
// Header names are matched case-insensitively; CGI-style names such as
// HTTP_SEC_CH_UA_MODEL are accepted too.
package clienthints
