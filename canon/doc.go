// Package canon implements the name reduction primitive used across the
// module.  Reduce strips a raw name down to its letters and digits so that
// spellings which differ only in case, spacing or punctuation collapse onto
// the same canonical form.  ReduceToLower additionally folds case and is the
// basis of every match key; it can be asked to leave selected runes (the
// wildcard glyphs) untouched so that pattern text survives folding.
package canon
