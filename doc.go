// Package cpfkit wires the cpf validator to its configuration, logging and
// message catalog.
//
// The validation itself lives in pkg/cpf and can be used on its own. This
// package builds a ready-to-use *cpf.Validator from environment variables:
//
//	v, err := cpfkit.NewFromEnv(ctx)
//	if err != nil {
//		return err
//	}
//
//	res := v.ValidateString(ctx, "111.444.777-35")
//
// Environment variables:
//
//	CPFKIT_ENV            development | staging | production (logger preset)
//	CPFKIT_SERVICE_NAME   service attribute on every log record
//	CPFKIT_LOG_LEVEL      debug | info | warn | error, overrides the preset
//	CPFKIT_LOG_FORMAT     json | text, overrides the preset
//	CPFKIT_LANGUAGE       message language, e.g. en or pt-BR
//	CPFKIT_MESSAGES_FILE  optional YAML catalog layered over the embedded one
//	CPFKIT_LOG_ATTRS      static log attributes, e.g. region:br,team:kyc
//
// A .env file in the working directory is honoured by NewFromEnv.
package cpfkit
