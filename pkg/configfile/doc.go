// Package configfile holds the caller-side editing state of server
// configuration files.
//
// A State tracks one file: its detected format, the sections shown in the
// form editor, and the raw text used when the file cannot be edited as a
// form. Unsupported formats and parse failures never lose data; the state
// falls back to raw mode and keeps the original text.
//
// An Editor ties states to a fileaccess.Store:
//
//	ed := configfile.NewEditor(fileaccess.NewOS(root), logger)
//	st, err := ed.Open(ctx, "server.properties")
//	if err != nil {
//		return err
//	}
//	if err := st.Set("", "motd", "Welcome", ""); err != nil {
//		return err
//	}
//	return ed.Save(ctx, st)
package configfile
