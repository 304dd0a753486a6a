package typesys

// TagTable maps bare layout tag names to fully qualified type names.
type TagTable map[string]string

// DefaultTags returns the framework views that layouts may reference without
// a package.
func DefaultTags() TagTable {
	return TagTable{
		"AutoCompleteTextView": "android.widget.AutoCompleteTextView",
		"Button":               "android.widget.Button",
		"CheckBox":             "android.widget.CheckBox",
		"DatePicker":           "android.widget.DatePicker",
		"DigitalClock":         "android.widget.DigitalClock",
		"EditText":             "android.widget.EditText",
		"ExpandableListView":   "android.widget.ExpandableListView",
		"FrameLayout":          "android.widget.FrameLayout",
		"GridView":             "android.widget.GridView",
		"HorizontalScrollView": "android.widget.HorizontalScrollView",
		"ImageButton":          "android.widget.ImageButton",
		"ImageView":            "android.widget.ImageView",
		"LinearLayout":         "android.widget.LinearLayout",
		"ListView":             "android.widget.ListView",
		"ProgressBar":          "android.widget.ProgressBar",
		"RadioButton":          "android.widget.RadioButton",
		"RelativeLayout":       "android.widget.RelativeLayout",
		"ScrollView":           "android.widget.ScrollView",
		"SeekBar":              "android.widget.SeekBar",
		"Spinner":              "android.widget.Spinner",
		"SurfaceView":          "android.view.SurfaceView",
		"TextView":             "android.widget.TextView",
		"TimePicker":           "android.widget.TimePicker",
		"VideoView":            "android.widget.VideoView",
		"View":                 "android.view.View",
		"WebView":              "android.webkit.WebView",
	}
}

// Merge returns a new table with overrides applied on top of t.
func (t TagTable) Merge(overrides map[string]string) TagTable {
	merged := make(TagTable, len(t)+len(overrides))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Qualify returns the fully qualified type of tag. Tags not in the table are
// assumed to be qualified already.
func (t TagTable) Qualify(tag string) string {
	if q, ok := t[tag]; ok {
		return q
	}
	return tag
}
