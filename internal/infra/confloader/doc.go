// Package confloader loads configuration with koanf and watches the
// configuration file with fsnotify.
//
// Priority (highest to lowest):
//
//  1. Environment aliases such as PORT
//  2. RANDAPI_* environment variables
//  3. The YAML configuration file
//  4. Defaults already set on the target struct
package confloader
