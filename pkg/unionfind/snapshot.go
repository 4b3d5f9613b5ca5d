package unionfind

import (
	"fmt"
	"os"

	"dsu_tool/pkg/errorutil"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// 快照格式:
//
//	{
//	    "id": "6f1c...",
//	    "size": 10,
//	    "sets": 7,
//	    "parent": [0, 1, 1, ...],
//	    "rank": [0, 1, 0, ...]
//	}
//
// sets 只是方便人看的冗余字段，读取时会和重新计算的结果比对。

// MarshalSnapshot 把并查集编码成带缩进的 JSON 快照
func MarshalSnapshot(d *DisjointSet) ([]byte, error) {
	s := d.State()
	doc := []byte(`{}`)
	var err error
	for _, kv := range []struct {
		path string
		val  any
	}{
		{"id", uuid.NewString()},
		{"size", d.Len()},
		{"sets", d.Count()},
		{"parent", s.Parent},
		{"rank", s.Rank},
	} {
		doc, err = sjson.SetBytes(doc, kv.path, kv.val)
		if err != nil {
			return nil, fmt.Errorf("写入快照字段 %s 失败: %w", kv.path, err)
		}
	}
	return pretty.PrettyOptions(doc, &pretty.Options{Width: 80, Indent: "    "}), nil
}

// UnmarshalSnapshot 解析快照并校验不变量
func UnmarshalSnapshot(data []byte) (*DisjointSet, error) {
	if !gjson.ValidBytes(data) {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
			"快照不是有效的 JSON", ErrCorruptState)
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return nil, corrupt("快照顶层必须是对象")
	}

	parent, err := intArray(res, "parent")
	if err != nil {
		return nil, err
	}
	rank, err := intArray(res, "rank")
	if err != nil {
		return nil, err
	}
	if size := res.Get("size"); size.Exists() && int(size.Int()) != len(parent) {
		return nil, corrupt("size=%d 与 parent 长度 %d 不一致", size.Int(), len(parent))
	}

	d, err := FromState(State{Parent: parent, Rank: rank})
	if err != nil {
		return nil, err
	}
	if sets := res.Get("sets"); sets.Exists() && int(sets.Int()) != d.Count() {
		return nil, corrupt("sets=%d 与实际集合数 %d 不一致", sets.Int(), d.Count())
	}
	return d, nil
}

func intArray(res gjson.Result, path string) ([]int, error) {
	field := res.Get(path)
	if !field.Exists() {
		return nil, corrupt("快照缺少字段 %q", path)
	}
	if !field.IsArray() {
		return nil, corrupt("字段 %q 必须是数组", path)
	}
	items := field.Array()
	out := make([]int, len(items))
	for i, it := range items {
		if it.Type != gjson.Number || float64(it.Int()) != it.Num {
			return nil, corrupt("%s[%d]=%s 不是整数", path, i, it.Raw)
		}
		out[i] = int(it.Int())
	}
	return out, nil
}

// WriteSnapshotFile 把快照写到文件
func WriteSnapshotFile(d *DisjointSet, filename string) error {
	data, err := MarshalSnapshot(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError,
			fmt.Sprintf("写入快照 %s 失败", filename), err)
	}
	return nil
}

// ReadSnapshotFile 从文件读取快照
func ReadSnapshotFile(filename string) (*DisjointSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput,
			fmt.Sprintf("读取快照 %s 失败", filename), err)
	}
	return UnmarshalSnapshot(data)
}
