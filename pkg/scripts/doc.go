// Package scripts runs package setup and teardown scripts.
//
// Scripts are run with /bin/sh so they need not be executable. The working
// directory is the target directory and STAU_DIR, STAU_PACKAGE and
// STAU_TARGET are added to the inherited environment. Output is streamed to
// the runner's writers as the script produces it.
package scripts
