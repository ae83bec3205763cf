// Package i18n holds the short user-facing texts shown by every surface.
package i18n

import (
	"errors"

	"github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	apperrors "github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
)

// Key names a non-error text.
type Key string

const (
	KeyFeedAdded   Key = "feed_added"
	KeySignedIn    Key = "signed_in"
	KeySignedOut   Key = "signed_out"
	KeyLoading     Key = "loading"
	KeyNoPosts     Key = "no_posts"
	KeyUnavailable Key = "unavailable"
	KeySubmitting  Key = "submitting"
	KeySubmit      Key = "submit"
)

type translations map[domain.Locale]string

// Ordered: the first sentinel matched by errors.Is wins, so wrapped
// sentinels must come before the ones they wrap.
var errorTexts = []struct {
	err  error
	text translations
}{
	{apperrors.ErrMissingCredentials, translations{
		domain.LocaleEn: "Username and password are required",
		domain.LocaleZh: "请输入用户名和密码",
	}},
	{apperrors.ErrInvalidCredentials, translations{
		domain.LocaleEn: "Invalid credentials",
		domain.LocaleZh: "用户名或密码错误",
	}},
	{apperrors.ErrSessionStorage, translations{
		domain.LocaleEn: "Could not save the sign-in, please try again",
		domain.LocaleZh: "无法保存登录状态，请重试",
	}},
	{apperrors.ErrMissingURL, translations{
		domain.LocaleEn: "Feed URL is required",
		domain.LocaleZh: "请输入订阅地址",
	}},
	{apperrors.ErrUnauthorized, translations{
		domain.LocaleEn: "Unauthorized, please sign in first",
		domain.LocaleZh: "未授权，请先登录",
	}},
	{apperrors.ErrBusy, translations{
		domain.LocaleEn: "A submission is already in progress",
		domain.LocaleZh: "正在提交，请稍候",
	}},
	{apperrors.ErrCredentialRefused, translations{
		domain.LocaleEn: "The server refused your sign-in, please sign in again",
		domain.LocaleZh: "登录凭证被拒绝，请重新登录",
	}},
	{apperrors.ErrRejected, translations{
		domain.LocaleEn: "Failed to add feed, check the URL or your permissions",
		domain.LocaleZh: "添加失败，请检查 URL 或权限",
	}},
	{apperrors.ErrMalformedResponse, translations{
		domain.LocaleEn: "Unexpected response from the server",
		domain.LocaleZh: "服务器响应异常",
	}},
	{apperrors.ErrTransport, translations{
		domain.LocaleEn: "An error occurred. Please try again.",
		domain.LocaleZh: "请求出错，请重试",
	}},
}

var fallbackError = translations{
	domain.LocaleEn: "Something went wrong",
	domain.LocaleZh: "出现错误",
}

var texts = map[Key]translations{
	KeyFeedAdded:   {domain.LocaleEn: "Feed added!", domain.LocaleZh: "添加成功！"},
	KeySignedIn:    {domain.LocaleEn: "Signed in", domain.LocaleZh: "登录成功"},
	KeySignedOut:   {domain.LocaleEn: "Signed out", domain.LocaleZh: "已退出登录"},
	KeyLoading:     {domain.LocaleEn: "Loading...", domain.LocaleZh: "加载中..."},
	KeyNoPosts:     {domain.LocaleEn: "No posts yet", domain.LocaleZh: "暂无文章"},
	KeyUnavailable: {domain.LocaleEn: "Posts are unavailable right now", domain.LocaleZh: "暂时无法获取文章"},
	KeySubmitting:  {domain.LocaleEn: "Submitting...", domain.LocaleZh: "提交中..."},
	KeySubmit:      {domain.LocaleEn: "Submit", domain.LocaleZh: "提交"},
}

// Message returns the localized text for err, or "" for a nil error.
func Message(err error, locale domain.Locale) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorTexts {
		if errors.Is(err, entry.err) {
			return entry.text.in(locale)
		}
	}
	return fallbackError.in(locale)
}

// Text returns the localized text for key.
func Text(key Key, locale domain.Locale) string {
	t, ok := texts[key]
	if !ok {
		return string(key)
	}
	return t.in(locale)
}

func (t translations) in(locale domain.Locale) string {
	if s, ok := t[locale]; ok {
		return s
	}
	return t[domain.LocaleEn]
}
