// Package config manages dotcli's own settings using Viper.
//
// Settings live in config.yaml under the XDG config directory
// (~/.config/dotcli/config.yaml on Linux) and can be overridden with
// DOTCLI_* environment variables:
//
//	version: 1
//	candidates:            # shell files searched in order
//	  - ~/.zprofile
//	  - ~/.zshrc
//	  - ~/.bashrc
//	  - ~/.bash_profile
//	rc_file: ""            # edit this file instead of searching
//	shell: /bin/zsh        # shell used to re-source after path add
//	auto_source: true
//	backup:
//	  enabled: true
//	  retention: 5
//
// A missing file is not an error; defaults apply. Loaded configs are
// validated with [Validate].
package config
