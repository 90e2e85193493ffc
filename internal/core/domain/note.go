package domain

// DefaultNote is the welcome note shown before anything has been saved.
const DefaultNote = `<h1>Welcome to What The Note!</h1>` +
	`<p>A minimal, always-accessible sticky note for macOS.</p>` +
	`<h2>Quick Start</h2><ul>` +
	`<li><p><strong>Show/Hide:</strong> Use keyboard shortcut (⌥⌘N) or hover your mouse in the top-right corner</p></li>` +
	`<li><p><strong>Formatting:</strong> Click the text icon in the top-left to reveal styling options</p></li>` +
	`<li><p><strong>Settings:</strong> Click the gear icon to customize behavior and shortcuts</p></li></ul>` +
	`<h2>Features</h2><ul data-type="taskList">` +
	`<li data-checked="false"><label><input type="checkbox"></label><div><p>Auto-save - your notes are saved instantly</p></div></li>` +
	`<li data-checked="false"><label><input type="checkbox"></label><div><p>Rich formatting - bold, italic, lists, headings, and more</p></div></li>` +
	`<li data-checked="false"><label><input type="checkbox"></label><div><p>Drag to reposition, resize from edges</p></div></li>` +
	`<li data-checked="false"><label><input type="checkbox"></label><div><p>Click away to hide (customizable in settings)</p></div></li>` +
	`<li data-checked="false"><label><input type="checkbox"></label><div><p>Adjustable text size in preferences</p></div></li></ul>` +
	`<p><em>Delete this text and start writing your notes!</em></p>`

// NoteFileName is the name of the note file inside the data directory.
const NoteFileName = "note.html"
