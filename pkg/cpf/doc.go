// Package cpf validates Brazilian individual taxpayer numbers (Cadastro de
// Pessoas Físicas).
//
// A CPF is eleven digits where the last two are check digits derived from the
// first nine by a weighted sum modulo 11. Input is accepted with or without
// the usual punctuation ("111.444.777-35" and "11144477735" are the same
// number); whitespace, dots and hyphens are stripped before any check runs.
//
// # Pipeline
//
// Validation runs four checks in order and stops at the first failure:
//
//  1. presence: a nil input fails with NullInput
//  2. emptiness: input that normalizes to "" fails with EmptyInput
//  3. pattern: anything other than eleven ASCII digits, or one digit
//     repeated eleven times, fails with InvalidDigitPattern
//  4. checksum: mismatching check digits fail with InvalidCPF
//
// Failures are data, not panics: every call returns a fresh Result that owns
// its error kind and localized message.
//
// # Usage
//
//	res := cpf.ValidateString("111.444.777-35")
//	if !res.Valid {
//	    log.Println(res.ErrorKind(), res.Message())
//	}
//
//	// Portuguese messages and debug logging
//	v := cpf.New(
//	    cpf.WithLanguage("pt-BR"),
//	    cpf.WithLogger(log),
//	)
//	res = v.Validate(ctx, input)
//	if errors.Is(res.Err(), cpf.ErrInvalidCPF) {
//	    // wrong check digits
//	}
//
// A Validator is immutable after New and safe for concurrent use.
package cpf
