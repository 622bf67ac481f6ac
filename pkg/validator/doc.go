// Package validator provides declarative validation rules that aggregate
// field-level failures into a single error.
//
// A Rule pairs a Check function with error metadata. Apply evaluates rules
// and collects the failing ones into ValidationErrors, which implements error
// and matches ErrValidationFailed through errors.Is.
//
// # CPF rules
//
// ValidCPF, RequiredCPF, OptionalCPF and ValidCPFWith adapt the cpf package's
// pipeline into rules. The rule message comes from the cpf result and the
// translation key is "validation.cpf.<kind>" with values "field" and "cpf"
// (the normalized digits), so callers can re-render messages in their own
// catalog.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidCPF("holder_cpf", form.HolderCPF),
//	    validator.OptionalCPF("dependent_cpf", form.DependentCPF),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
package validator
