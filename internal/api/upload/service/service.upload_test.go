package uploadsvc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ujju04/smartjharkhand/internal/common"
)

// TestIsAllowedContentType kiểm tra chỉ ảnh và video được chấp nhận
func TestIsAllowedContentType(t *testing.T) {
	assert.True(t, IsAllowedContentType("image/jpeg"))
	assert.True(t, IsAllowedContentType("image/png"))
	assert.True(t, IsAllowedContentType("video/mp4"))

	assert.False(t, IsAllowedContentType("application/pdf"))
	assert.False(t, IsAllowedContentType("text/html"))
	assert.False(t, IsAllowedContentType(""))
}

// TestStoreWritesFile kiểm tra file được ghi với tên ngẫu nhiên
// giữ phần mở rộng và URL công khai /uploads/{tên file}
func TestStoreWritesFile(t *testing.T) {
	service := &UploadService{dir: t.TempDir()}
	data := []byte("anh minh chung")

	stored, err := service.Store("truoc-khi-sua.JPG", "image/jpeg", data)
	require.NoError(t, err)

	assert.Equal(t, "truoc-khi-sua.JPG", stored.OriginalName)
	assert.True(t, strings.HasPrefix(stored.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(stored.URL, ".jpg"), "Phần mở rộng phải giữ lại ở dạng thường")
	assert.Equal(t, int64(len(data)), stored.Size)

	name := strings.TrimPrefix(stored.URL, "/uploads/")
	assert.NotContains(t, name, "truoc-khi-sua", "Tên file trên đĩa phải là tên ngẫu nhiên")

	written, err := os.ReadFile(filepath.Join(service.dir, name))
	require.NoError(t, err)
	assert.Equal(t, data, written)
}

// TestStoreUniqueNames kiểm tra hai lần lưu cùng một tên gốc không ghi đè nhau
func TestStoreUniqueNames(t *testing.T) {
	service := &UploadService{dir: t.TempDir()}

	first, err := service.Store("cung-ten.png", "image/png", []byte("a"))
	require.NoError(t, err)
	second, err := service.Store("cung-ten.png", "image/png", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first.URL, second.URL)
}

// TestStoreRejectsOtherTypes kiểm tra lỗi validation nêu rõ tên file vi phạm
func TestStoreRejectsOtherTypes(t *testing.T) {
	service := &UploadService{dir: t.TempDir()}

	_, err := service.Store("tai-lieu.pdf", "application/pdf", []byte("x"))
	require.Error(t, err)

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
	assert.Contains(t, customErr.Message, "tai-lieu.pdf", "Thông báo lỗi phải nêu tên file vi phạm")
}
