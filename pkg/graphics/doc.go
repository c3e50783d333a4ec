// Package graphics is the heart of gfxpack: it enumerates and validates
// graphics packs, identifies what is currently installed, merges pack
// init fields into the live configuration, installs packs into a live
// Dwarf Fortress folder and updates savegames in batch.
//
// Components mirror the operations a user actually performs. Catalog
// answers "what packs do I have and which one is installed". Validator
// answers "can this pack go onto that DF version". FieldMerger moves
// the allow-listed init fields. Installer runs the full install
// pipeline. BatchDriver repeats the raw update across savegames.
// Tilesets and Simplifier cover the auxiliary pack maintenance tasks.
package graphics
