package i18n

type entry struct {
	key string
	en  string
	zh  string
}

// Message keys used by the web UI
const (
	KeyTitle         = "title"
	KeyChooseTool    = "choose_tool"
	KeyMerge         = "merge"
	KeyRotate        = "rotate"
	KeySplit         = "split"
	KeyCompress      = "compress"
	KeyExtract       = "extract"
	KeyUploadMany    = "upload_many"
	KeyUploadOne     = "upload_one"
	KeyRotateBy      = "rotate_by"
	KeySplitAt       = "split_at"
	KeyPageNumber    = "page_number"
	KeySinglePage    = "single_page"
	KeyCompressTip   = "compress_tip"
	KeyPrivacy       = "privacy"
	KeyDone          = "done"
	KeyOtherLanguage = "other_language"
	KeyPageCount     = "page_count"
)

var entries = []entry{
	{KeyTitle, "My PDF Tool", "我的 PDF 工具"},
	{KeyChooseTool, "Choose a tool", "选择工具"},
	{KeyMerge, "Merge", "合并"},
	{KeyRotate, "Rotate", "旋转"},
	{KeySplit, "Split", "拆分"},
	{KeyCompress, "Compress", "压缩"},
	{KeyExtract, "Extract page", "提取页面"},
	{KeyUploadMany, "Upload PDFs (2 or more)", "上传 PDF（2 个或以上）"},
	{KeyUploadOne, "Upload ONE PDF", "上传一个 PDF"},
	{KeyRotateBy, "Rotate all pages by", "所有页面旋转角度"},
	{KeySplitAt, "Split after page", "在此页之后拆分"},
	{KeyPageNumber, "Page number", "页码"},
	{KeySinglePage, "This PDF has only 1 page, nothing to split.", "此 PDF 只有 1 页，无需拆分。"},
	{KeyCompressTip, "Tip: results depend on the PDF content (scans and large images usually shrink the most).", "提示：压缩效果取决于 PDF 内容（扫描件和大图通常更明显）。"},
	{KeyPrivacy, "Files are processed in memory and not stored.", "文件仅在内存中处理，不会被保存。"},
	{KeyDone, "Done!", "完成！"},
	{KeyOtherLanguage, "中文", "English"},
	{KeyPageCount, "%d pages", "共 %d 页"},

	// filename words, keyed by their English form
	{"merged", "merged", "合并"},
	{"etc", "etc", "等"},
	{"rotated_%d", "rotated_%d", "旋转_%d"},
	{"part%d", "part%d", "第%d部分"},
	{"compressed", "compressed", "压缩"},
	{"page%d", "page%d", "第%d页"},
}

var entryByKey = func() map[string]entry {
	m := make(map[string]entry, len(entries))
	for _, e := range entries {
		m[e.key] = e
	}
	return m
}()
