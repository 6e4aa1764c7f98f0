package env

// Prefix is the ENV variable prefix for all flag bindings
const Prefix = "EXRATE"
