package i18n

import "github.com/bazaar-next/internal/constants"

var messages = map[string]map[string]string{
	constants.LocaleEnUS: {
		"success":                         "success",
		"error.bad_request":               "invalid request parameters",
		"error.unauthorized":              "please log in first",
		"error.forbidden":                 "you do not have permission to perform this action",
		"error.not_found":                 "resource not found",
		"error.internal":                  "internal server error",
		"error.too_many_requests":         "too many requests, please try again later",
		"error.save_failed":               "failed to save, please try again",
		"error.invalid_id":                "invalid id",
		"error.invalid_credentials":       "invalid username or password",
		"error.invalid_password":          "current password is incorrect",
		"error.password_min_length":       "password must be at least %d characters",
		"error.password_require_letter":   "password must contain a letter",
		"error.password_require_number":   "password must contain a digit",
		"error.admin_disabled":            "this admin account is disabled",
		"error.user_disabled":             "this account is disabled",
		"error.email_exists":              "email is already registered",
		"error.username_exists":           "username already exists",
		"error.invalid_role":              "invalid admin role",
		"error.cannot_delete_self":        "you cannot delete your own account",
		"error.last_super_admin":          "at least one super admin must remain",
		"error.token_invalid":             "session expired, please log in again",
		"error.slug_exists":               "slug already exists",
		"error.code_exists":               "coupon code already exists",
		"error.sku_exists":                "SKU already exists",
		"error.category_not_found":        "category not found",
		"error.subcategory_not_found":     "subcategory not found",
		"error.subcategory_mismatch":      "subcategory does not belong to the selected category",
		"error.category_in_use":           "category in use",
		"error.subcategory_in_use":        "subcategory in use",
		"error.product_not_found":         "product not found",
		"error.variant_not_found":         "variant not found",
		"error.menu_has_children":         "menu item has children",
		"error.menu_parent_invalid":       "invalid parent menu item",
		"error.section_type_invalid":      "invalid product section type",
		"error.invalid_rating":            "rating must be between 1 and 5",
		"error.invalid_date_range":        "end time must be after start time",
		"error.invalid_order_item":        "invalid order item",
		"error.product_not_available":     "product is not available",
		"error.variant_not_available":     "product variant is not available",
		"error.shipping_method_required":  "please select a shipping method",
		"error.shipping_not_available":    "shipping method not available for this order",
		"error.shipping_method_not_found": "shipping method not found",
		"error.order_not_found":           "order not found",
		"error.order_create_failed":       "failed to place order, please try again",
		"error.invalid_status":            "invalid order status",
		"error.invalid_payment_status":    "invalid payment status",
		"error.invalid_payment_method":    "invalid payment method",
		"error.coupon_type_invalid":       "invalid coupon type",
		"error.captcha_required":          "please complete the captcha",
		"error.captcha_invalid":           "captcha is incorrect or expired",
		"error.upload_empty":              "please choose a file",
		"error.upload_too_large":          "file is too large",
		"error.upload_type_not_allowed":   "file type not allowed",
		"error.upload_dimension_exceeded": "image dimensions are too large",
		"error.upload_scene_invalid":      "invalid upload scene",
		"error.upload_failed":             "upload failed",
		"email.order_placed.subject":      "Order %s received",
		"email.order_placed.greeting":     "Hi %s,",
		"email.order_placed.intro":        "Thank you for your order. We have received order %s and will contact you to confirm it.",
		"email.order_placed.items":        "Items:",
		"email.order.subtotal":            "Subtotal",
		"email.order.discount":            "Discount",
		"email.order.shipping":            "Shipping",
		"email.order.total":               "Total",
		"email.order.payment_method":      "Payment method",
		"email.order.track_hint":          "Track your order with the order number and your email: %s",
		"email.order_status.subject":      "Order %s update: %s",
		"email.order_status.body":         "Your order %s is now %s.",
		"email.order_status.CONFIRMED":    "confirmed",
		"email.order_status.SHIPPED":      "shipped",
		"email.order_status.DELIVERED":    "delivered",
		"email.order_status.CANCELLED":    "cancelled",
		"email.signature":                 "Thanks for shopping with %s.",
	},
	constants.LocaleBnBD: {
		"success":                         "সফল",
		"error.bad_request":               "অনুরোধের তথ্য সঠিক নয়",
		"error.unauthorized":              "অনুগ্রহ করে আগে লগইন করুন",
		"error.forbidden":                 "এই কাজের অনুমতি আপনার নেই",
		"error.not_found":                 "খুঁজে পাওয়া যায়নি",
		"error.internal":                  "সার্ভারে সমস্যা হয়েছে",
		"error.too_many_requests":         "অনেক বেশি অনুরোধ, কিছুক্ষণ পর আবার চেষ্টা করুন",
		"error.save_failed":               "সংরক্ষণ ব্যর্থ হয়েছে, আবার চেষ্টা করুন",
		"error.invalid_id":                "আইডি সঠিক নয়",
		"error.invalid_credentials":       "ইউজারনেম বা পাসওয়ার্ড সঠিক নয়",
		"error.invalid_password":          "বর্তমান পাসওয়ার্ড সঠিক নয়",
		"error.password_min_length":       "পাসওয়ার্ড কমপক্ষে %d অক্ষরের হতে হবে",
		"error.password_require_letter":   "পাসওয়ার্ডে অন্তত একটি অক্ষর থাকতে হবে",
		"error.password_require_number":   "পাসওয়ার্ডে অন্তত একটি সংখ্যা থাকতে হবে",
		"error.admin_disabled":            "এই অ্যাডমিন অ্যাকাউন্টটি নিষ্ক্রিয়",
		"error.user_disabled":             "এই অ্যাকাউন্টটি নিষ্ক্রিয়",
		"error.email_exists":              "এই ইমেইল ইতিমধ্যে নিবন্ধিত",
		"error.username_exists":           "এই ইউজারনেম ইতিমধ্যে আছে",
		"error.invalid_role":              "অ্যাডমিন ভূমিকা সঠিক নয়",
		"error.cannot_delete_self":        "নিজের অ্যাকাউন্ট মুছে ফেলা যাবে না",
		"error.last_super_admin":          "অন্তত একজন সুপার অ্যাডমিন থাকতে হবে",
		"error.token_invalid":             "সেশনের মেয়াদ শেষ, আবার লগইন করুন",
		"error.slug_exists":               "এই স্লাগ ইতিমধ্যে আছে",
		"error.code_exists":               "এই কুপন কোড ইতিমধ্যে আছে",
		"error.sku_exists":                "এই SKU ইতিমধ্যে আছে",
		"error.category_not_found":        "ক্যাটাগরি পাওয়া যায়নি",
		"error.subcategory_not_found":     "সাব-ক্যাটাগরি পাওয়া যায়নি",
		"error.subcategory_mismatch":      "সাব-ক্যাটাগরিটি নির্বাচিত ক্যাটাগরির নয়",
		"error.category_in_use":           "ক্যাটাগরিটি ব্যবহৃত হচ্ছে",
		"error.subcategory_in_use":        "সাব-ক্যাটাগরিটি ব্যবহৃত হচ্ছে",
		"error.product_not_found":         "পণ্য পাওয়া যায়নি",
		"error.variant_not_found":         "ভ্যারিয়েন্ট পাওয়া যায়নি",
		"error.menu_has_children":         "এই মেনুর অধীনে আরও মেনু আছে",
		"error.menu_parent_invalid":       "প্যারেন্ট মেনু সঠিক নয়",
		"error.section_type_invalid":      "পণ্য সেকশনের ধরন সঠিক নয়",
		"error.invalid_rating":            "রেটিং ১ থেকে ৫ এর মধ্যে হতে হবে",
		"error.invalid_date_range":        "শেষ সময় শুরুর সময়ের পরে হতে হবে",
		"error.invalid_order_item":        "অর্ডারের পণ্য সঠিক নয়",
		"error.product_not_available":     "পণ্যটি এখন পাওয়া যাচ্ছে না",
		"error.variant_not_available":     "ভ্যারিয়েন্টটি এখন পাওয়া যাচ্ছে না",
		"error.shipping_method_required":  "অনুগ্রহ করে একটি ডেলিভারি পদ্ধতি বেছে নিন",
		"error.shipping_not_available":    "এই অর্ডারের জন্য ডেলিভারি পদ্ধতিটি প্রযোজ্য নয়",
		"error.shipping_method_not_found": "ডেলিভারি পদ্ধতি পাওয়া যায়নি",
		"error.order_not_found":           "অর্ডার পাওয়া যায়নি",
		"error.order_create_failed":       "অর্ডার করা যায়নি, আবার চেষ্টা করুন",
		"error.invalid_status":            "অর্ডারের অবস্থা সঠিক নয়",
		"error.invalid_payment_status":    "পেমেন্টের অবস্থা সঠিক নয়",
		"error.invalid_payment_method":    "পেমেন্ট পদ্ধতি সঠিক নয়",
		"error.coupon_type_invalid":       "কুপনের ধরন সঠিক নয়",
		"error.captcha_required":          "অনুগ্রহ করে ক্যাপচা পূরণ করুন",
		"error.captcha_invalid":           "ক্যাপচা ভুল বা মেয়াদোত্তীর্ণ",
		"error.upload_empty":              "অনুগ্রহ করে একটি ফাইল বেছে নিন",
		"error.upload_too_large":          "ফাইলটি অনেক বড়",
		"error.upload_type_not_allowed":   "এই ধরনের ফাইল অনুমোদিত নয়",
		"error.upload_dimension_exceeded": "ছবির মাপ অনেক বড়",
		"error.upload_scene_invalid":      "আপলোডের ধরন সঠিক নয়",
		"error.upload_failed":             "আপলোড ব্যর্থ হয়েছে",
		"email.order_placed.subject":      "অর্ডার %s গ্রহণ করা হয়েছে",
		"email.order_placed.greeting":     "প্রিয় %s,",
		"email.order_placed.intro":        "অর্ডারের জন্য ধন্যবাদ। আমরা অর্ডার %s পেয়েছি এবং নিশ্চিত করতে আপনার সাথে যোগাযোগ করব।",
		"email.order_placed.items":        "পণ্যসমূহ:",
		"email.order.subtotal":            "সাবটোটাল",
		"email.order.discount":            "ছাড়",
		"email.order.shipping":            "ডেলিভারি চার্জ",
		"email.order.total":               "সর্বমোট",
		"email.order.payment_method":      "পেমেন্ট পদ্ধতি",
		"email.order.track_hint":          "অর্ডার নম্বর ও ইমেইল দিয়ে অর্ডার ট্র্যাক করুন: %s",
		"email.order_status.subject":      "অর্ডার %s আপডেট: %s",
		"email.order_status.body":         "আপনার অর্ডার %s এখন %s।",
		"email.order_status.CONFIRMED":    "নিশ্চিত করা হয়েছে",
		"email.order_status.SHIPPED":      "পাঠানো হয়েছে",
		"email.order_status.DELIVERED":    "পৌঁছে দেওয়া হয়েছে",
		"email.order_status.CANCELLED":    "বাতিল করা হয়েছে",
		"email.signature":                 "%s থেকে কেনাকাটার জন্য ধন্যবাদ।",
	},
}
